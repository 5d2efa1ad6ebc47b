package catalog

// BrightStars returns a compiled-in catalog of named bright stars, used
// when no catalog file is configured. Coordinates are J2000; B-V indices
// and magnitudes from the Yale Bright Star Catalog and IAU star names.
func BrightStars() *Catalog {
	stars := make([]Star, len(brightStars))
	copy(stars, brightStars)
	return New(stars)
}

// brightStars is ordered roughly by magnitude; New re-sorts regardless.
// Fields: HR number, RA hours, Dec degrees, magnitude, B-V, proper name,
// Bayer designation, constellation.
var brightStars = []Star{
	{ID: 2491, RAHours: 6.752, DecDeg: -16.716, Mag: -1.46, ColorIndex: 0.00, ProperName: "Sirius", Designation: "Alp CMa", Constellation: "CMa"},
	{ID: 2326, RAHours: 6.399, DecDeg: -52.696, Mag: -0.74, ColorIndex: 0.15, ProperName: "Canopus", Designation: "Alp Car", Constellation: "Car"},
	{ID: 5340, RAHours: 14.261, DecDeg: 19.182, Mag: -0.05, ColorIndex: 1.23, ProperName: "Arcturus", Designation: "Alp Boo", Constellation: "Boo"},
	{ID: 7001, RAHours: 18.616, DecDeg: 38.784, Mag: 0.03, ColorIndex: 0.00, ProperName: "Vega", Designation: "Alp Lyr", Constellation: "Lyr"},
	{ID: 1708, RAHours: 5.278, DecDeg: 45.998, Mag: 0.08, ColorIndex: 0.80, ProperName: "Capella", Designation: "Alp Aur", Constellation: "Aur"},
	{ID: 1713, RAHours: 5.242, DecDeg: -8.202, Mag: 0.13, ColorIndex: -0.03, ProperName: "Rigel", Designation: "Bet Ori", Constellation: "Ori"},
	{ID: 2943, RAHours: 7.655, DecDeg: 5.225, Mag: 0.34, ColorIndex: 0.42, ProperName: "Procyon", Designation: "Alp CMi", Constellation: "CMi"},
	{ID: 472, RAHours: 1.629, DecDeg: -57.237, Mag: 0.46, ColorIndex: -0.16, ProperName: "Achernar", Designation: "Alp Eri", Constellation: "Eri"},
	{ID: 2061, RAHours: 5.920, DecDeg: 7.407, Mag: 0.50, ColorIndex: 1.85, ProperName: "Betelgeuse", Designation: "Alp Ori", Constellation: "Ori"},
	{ID: 5267, RAHours: 14.064, DecDeg: -60.373, Mag: 0.61, ColorIndex: -0.23, ProperName: "Hadar", Designation: "Bet Cen", Constellation: "Cen"},
	{ID: 7557, RAHours: 19.846, DecDeg: 8.868, Mag: 0.76, ColorIndex: 0.22, ProperName: "Altair", Designation: "Alp Aql", Constellation: "Aql"},
	{ID: 4730, RAHours: 12.443, DecDeg: -63.099, Mag: 0.76, ColorIndex: -0.24, ProperName: "Acrux", Designation: "Alp Cru", Constellation: "Cru"},
	{ID: 1457, RAHours: 4.599, DecDeg: 16.509, Mag: 0.85, ColorIndex: 1.54, ProperName: "Aldebaran", Designation: "Alp Tau", Constellation: "Tau"},
	{ID: 6134, RAHours: 16.490, DecDeg: -26.432, Mag: 0.96, ColorIndex: 1.83, ProperName: "Antares", Designation: "Alp Sco", Constellation: "Sco"},
	{ID: 5056, RAHours: 13.420, DecDeg: -11.161, Mag: 0.97, ColorIndex: -0.23, ProperName: "Spica", Designation: "Alp Vir", Constellation: "Vir"},
	{ID: 2990, RAHours: 7.755, DecDeg: 28.026, Mag: 1.14, ColorIndex: 1.00, ProperName: "Pollux", Designation: "Bet Gem", Constellation: "Gem"},
	{ID: 8728, RAHours: 22.961, DecDeg: -29.622, Mag: 1.16, ColorIndex: 0.09, ProperName: "Fomalhaut", Designation: "Alp PsA", Constellation: "PsA"},
	{ID: 7924, RAHours: 20.690, DecDeg: 45.280, Mag: 1.25, ColorIndex: 0.09, ProperName: "Deneb", Designation: "Alp Cyg", Constellation: "Cyg"},
	{ID: 4853, RAHours: 12.795, DecDeg: -59.689, Mag: 1.25, ColorIndex: -0.23, ProperName: "Mimosa", Designation: "Bet Cru", Constellation: "Cru"},
	{ID: 3982, RAHours: 10.140, DecDeg: 11.967, Mag: 1.35, ColorIndex: -0.11, ProperName: "Regulus", Designation: "Alp Leo", Constellation: "Leo"},
	{ID: 2618, RAHours: 6.977, DecDeg: -28.972, Mag: 1.50, ColorIndex: -0.21, ProperName: "Adhara", Designation: "Eps CMa", Constellation: "CMa"},
	{ID: 2891, RAHours: 7.577, DecDeg: 31.889, Mag: 1.58, ColorIndex: 0.03, ProperName: "Castor", Designation: "Alp Gem", Constellation: "Gem"},
	{ID: 4763, RAHours: 12.519, DecDeg: -57.113, Mag: 1.63, ColorIndex: 1.59, ProperName: "Gacrux", Designation: "Gam Cru", Constellation: "Cru"},
	{ID: 6527, RAHours: 17.560, DecDeg: -37.104, Mag: 1.63, ColorIndex: -0.22, ProperName: "Shaula", Designation: "Lam Sco", Constellation: "Sco"},
	{ID: 1790, RAHours: 5.419, DecDeg: 6.350, Mag: 1.64, ColorIndex: -0.22, ProperName: "Bellatrix", Designation: "Gam Ori", Constellation: "Ori"},
	{ID: 1791, RAHours: 5.438, DecDeg: 28.608, Mag: 1.65, ColorIndex: -0.13, ProperName: "Elnath", Designation: "Bet Tau", Constellation: "Tau"},
	{ID: 3685, RAHours: 9.220, DecDeg: -69.717, Mag: 1.68, ColorIndex: 0.00, ProperName: "Miaplacidus", Designation: "Bet Car", Constellation: "Car"},
	{ID: 1903, RAHours: 5.604, DecDeg: -1.202, Mag: 1.69, ColorIndex: -0.18, ProperName: "Alnilam", Designation: "Eps Ori", Constellation: "Ori"},
	{ID: 8425, RAHours: 22.137, DecDeg: -46.961, Mag: 1.74, ColorIndex: -0.13, ProperName: "Alnair", Designation: "Alp Gru", Constellation: "Gru"},
	{ID: 1948, RAHours: 5.679, DecDeg: -1.943, Mag: 1.77, ColorIndex: -0.20, ProperName: "Alnitak", Designation: "Zet Ori", Constellation: "Ori"},
	{ID: 4905, RAHours: 12.900, DecDeg: 55.960, Mag: 1.77, ColorIndex: -0.02, ProperName: "Alioth", Designation: "Eps UMa", Constellation: "UMa"},
	{ID: 4301, RAHours: 11.062, DecDeg: 61.751, Mag: 1.79, ColorIndex: 1.07, ProperName: "Dubhe", Designation: "Alp UMa", Constellation: "UMa"},
	{ID: 1017, RAHours: 3.405, DecDeg: 49.861, Mag: 1.79, ColorIndex: 0.48, ProperName: "Mirfak", Designation: "Alp Per", Constellation: "Per"},
	{ID: 2693, RAHours: 7.140, DecDeg: -26.393, Mag: 1.84, ColorIndex: 0.68, ProperName: "Wezen", Designation: "Del CMa", Constellation: "CMa"},
	{ID: 6879, RAHours: 18.403, DecDeg: -34.384, Mag: 1.85, ColorIndex: -0.03, ProperName: "Kaus Australis", Designation: "Eps Sgr", Constellation: "Sgr"},
	{ID: 5191, RAHours: 13.792, DecDeg: 49.313, Mag: 1.86, ColorIndex: -0.19, ProperName: "Alkaid", Designation: "Eta UMa", Constellation: "UMa"},
	{ID: 2088, RAHours: 5.992, DecDeg: 44.948, Mag: 1.90, ColorIndex: 0.03, ProperName: "Menkalinan", Designation: "Bet Aur", Constellation: "Aur"},
	{ID: 6217, RAHours: 16.811, DecDeg: -69.028, Mag: 1.92, ColorIndex: 1.45, ProperName: "Atria", Designation: "Alp TrA", Constellation: "TrA"},
	{ID: 2421, RAHours: 6.629, DecDeg: 16.399, Mag: 1.93, ColorIndex: 0.00, ProperName: "Alhena", Designation: "Gam Gem", Constellation: "Gem"},
	{ID: 7790, RAHours: 20.427, DecDeg: -56.735, Mag: 1.94, ColorIndex: -0.20, ProperName: "Peacock", Designation: "Alp Pav", Constellation: "Pav"},
	{ID: 2294, RAHours: 6.378, DecDeg: -17.956, Mag: 1.98, ColorIndex: -0.23, ProperName: "Mirzam", Designation: "Bet CMa", Constellation: "CMa"},
	{ID: 3748, RAHours: 9.460, DecDeg: -8.659, Mag: 2.00, ColorIndex: 1.44, ProperName: "Alphard", Designation: "Alp Hya", Constellation: "Hya"},
	{ID: 617, RAHours: 2.120, DecDeg: 23.463, Mag: 2.00, ColorIndex: 1.15, ProperName: "Hamal", Designation: "Alp Ari", Constellation: "Ari"},
	{ID: 424, RAHours: 2.530, DecDeg: 89.264, Mag: 2.02, ColorIndex: 0.60, ProperName: "Polaris", Designation: "Alp UMi", Constellation: "UMi"},
	{ID: 188, RAHours: 0.726, DecDeg: -17.987, Mag: 2.02, ColorIndex: 1.02, ProperName: "Diphda", Designation: "Bet Cet", Constellation: "Cet"},
	{ID: 7121, RAHours: 18.921, DecDeg: -26.297, Mag: 2.02, ColorIndex: -0.22, ProperName: "Nunki", Designation: "Sig Sgr", Constellation: "Sgr"},
	{ID: 5054, RAHours: 13.399, DecDeg: 54.925, Mag: 2.04, ColorIndex: 0.02, ProperName: "Mizar", Designation: "Zet UMa", Constellation: "UMa"},
	{ID: 15, RAHours: 0.140, DecDeg: 29.091, Mag: 2.06, ColorIndex: -0.11, ProperName: "Alpheratz", Designation: "Alp And", Constellation: "And"},
	{ID: 6556, RAHours: 17.582, DecDeg: 12.560, Mag: 2.08, ColorIndex: 0.15, ProperName: "Rasalhague", Designation: "Alp Oph", Constellation: "Oph"},
	{ID: 5563, RAHours: 14.845, DecDeg: 74.156, Mag: 2.08, ColorIndex: 1.47, ProperName: "Kochab", Designation: "Bet UMi", Constellation: "UMi"},
	{ID: 2004, RAHours: 5.796, DecDeg: -9.670, Mag: 2.09, ColorIndex: -0.17, ProperName: "Saiph", Designation: "Kap Ori", Constellation: "Ori"},
	{ID: 936, RAHours: 3.136, DecDeg: 40.957, Mag: 2.12, ColorIndex: -0.05, ProperName: "Algol", Designation: "Bet Per", Constellation: "Per"},
	{ID: 4534, RAHours: 11.818, DecDeg: 14.572, Mag: 2.13, ColorIndex: 0.09, ProperName: "Denebola", Designation: "Bet Leo", Constellation: "Leo"},
	{ID: 6705, RAHours: 17.943, DecDeg: 51.489, Mag: 2.23, ColorIndex: 1.52, ProperName: "Eltanin", Designation: "Gam Dra", Constellation: "Dra"},
	{ID: 7796, RAHours: 20.370, DecDeg: 40.257, Mag: 2.23, ColorIndex: 0.67, ProperName: "Sadr", Designation: "Gam Cyg", Constellation: "Cyg"},
	{ID: 5793, RAHours: 15.578, DecDeg: 26.715, Mag: 2.23, ColorIndex: -0.02, ProperName: "Alphecca", Designation: "Alp CrB", Constellation: "CrB"},
	{ID: 1852, RAHours: 5.533, DecDeg: -0.299, Mag: 2.23, ColorIndex: -0.22, ProperName: "Mintaka", Designation: "Del Ori", Constellation: "Ori"},
	{ID: 168, RAHours: 0.675, DecDeg: 56.537, Mag: 2.23, ColorIndex: 1.17, ProperName: "Schedar", Designation: "Alp Cas", Constellation: "Cas"},
	{ID: 21, RAHours: 0.153, DecDeg: 59.150, Mag: 2.27, ColorIndex: 0.34, ProperName: "Caph", Designation: "Bet Cas", Constellation: "Cas"},
	{ID: 4295, RAHours: 11.031, DecDeg: 56.382, Mag: 2.37, ColorIndex: -0.02, ProperName: "Merak", Designation: "Bet UMa", Constellation: "UMa"},
	{ID: 8308, RAHours: 21.736, DecDeg: 9.875, Mag: 2.39, ColorIndex: 1.53, ProperName: "Enif", Designation: "Eps Peg", Constellation: "Peg"},
	{ID: 8775, RAHours: 23.063, DecDeg: 28.083, Mag: 2.42, ColorIndex: 1.67, ProperName: "Scheat", Designation: "Bet Peg", Constellation: "Peg"},
	{ID: 4554, RAHours: 11.897, DecDeg: 53.695, Mag: 2.44, ColorIndex: 0.00, ProperName: "Phecda", Designation: "Gam UMa", Constellation: "UMa"},
	{ID: 8781, RAHours: 23.079, DecDeg: 15.205, Mag: 2.49, ColorIndex: -0.04, ProperName: "Markab", Designation: "Alp Peg", Constellation: "Peg"},
	{ID: 8162, RAHours: 21.310, DecDeg: 62.586, Mag: 2.51, ColorIndex: 0.22, ProperName: "Alderamin", Designation: "Alp Cep", Constellation: "Cep"},
	{ID: 4915, RAHours: 12.934, DecDeg: 38.318, Mag: 2.81, ColorIndex: -0.06, ProperName: "Cor Caroli", Designation: "Alp CVn", Constellation: "CVn"},
	{ID: 1165, RAHours: 3.791, DecDeg: 24.105, Mag: 2.87, ColorIndex: -0.09, ProperName: "Alcyone", Designation: "Eta Tau", Constellation: "Tau"},
	{ID: 7417, RAHours: 19.512, DecDeg: 27.960, Mag: 3.18, ColorIndex: 1.13, ProperName: "Albireo", Designation: "Bet Cyg", Constellation: "Cyg"},
	{ID: 4660, RAHours: 12.257, DecDeg: 57.033, Mag: 3.31, ColorIndex: 0.08, ProperName: "Megrez", Designation: "Del UMa", Constellation: "UMa"},
	{ID: 5291, RAHours: 14.073, DecDeg: 64.376, Mag: 3.65, ColorIndex: -0.05, ProperName: "Thuban", Designation: "Alp Dra", Constellation: "Dra"},
}
