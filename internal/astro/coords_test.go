package astro

import (
	"math"
	"testing"
	"time"
)

func TestEquatorialToHorizontal_PoleStarFromPole(t *testing.T) {
	// A star at the celestial pole observed from the north pole sits at the
	// zenith at any instant.
	pole := Equatorial{RAHours: 0, DecDeg: 90}
	obs := Observer{LatDeg: 90, LonDeg: 0}

	for hour := 0; hour < 24; hour += 5 {
		at := time.Date(2024, 6, 15, hour, 0, 0, 0, time.UTC)
		h := EquatorialToHorizontal(pole, obs, at)

		if math.Abs(h.AltDeg-90) > 0.01 {
			t.Errorf("pole star from pole at hour %d: alt=%v, want ~90", hour, h.AltDeg)
		}
	}
}

func TestEquatorialToHorizontal_Polaris(t *testing.T) {
	// Polaris (RA 2.53h, Dec 89.26) from 35N: elevation ~ latitude,
	// azimuth near due north.
	polaris := Equatorial{RAHours: 2.530, DecDeg: 89.264}
	obs := Observer{LatDeg: 35.0, LonDeg: -117.0}

	at := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	h := EquatorialToHorizontal(polaris, obs, at)

	if math.Abs(h.AltDeg-obs.LatDeg) > 2 {
		t.Errorf("Polaris altitude = %v, want ~%v (latitude)", h.AltDeg, obs.LatDeg)
	}
	azFromNorth := math.Min(h.AzDeg, 360-h.AzDeg)
	if azFromNorth > 2 {
		t.Errorf("Polaris azimuth = %v, want near 0/360", h.AzDeg)
	}
}

func TestEquatorialToHorizontal_ZenithStar(t *testing.T) {
	// A star with Dec = latitude and RA = LST is at the zenith.
	obs := Observer{LatDeg: 35.0, LonDeg: -117.0}
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	lst := LocalSiderealTime(at, obs.LonDeg)
	zenith := Equatorial{RAHours: lst, DecDeg: obs.LatDeg}

	h := EquatorialToHorizontal(zenith, obs, at)
	if math.Abs(h.AltDeg-90) > 0.01 {
		t.Errorf("zenith star altitude = %v, want ~90", h.AltDeg)
	}
	// Azimuth is ill-defined at the zenith but must stay in range.
	if h.AzDeg < 0 || h.AzDeg >= 360 {
		t.Errorf("zenith azimuth out of range: %v", h.AzDeg)
	}
}

func TestEquatorialToHorizontal_SouthernStarNeverRises(t *testing.T) {
	// From 35N a star at Dec=-60 peaks at 90-35-60 = -5 degrees.
	star := Equatorial{RAHours: 0, DecDeg: -60}
	obs := Observer{LatDeg: 35.0, LonDeg: -117.0}

	for hour := 0; hour < 24; hour += 3 {
		at := time.Date(2024, 6, 15, hour, 0, 0, 0, time.UTC)
		h := EquatorialToHorizontal(star, obs, at)
		if h.AltDeg > 0 {
			t.Errorf("star at Dec=-60 visible from 35N at hour %d: alt=%v", hour, h.AltDeg)
		}
	}
}

func TestEquatorialToHorizontal_AzimuthRange(t *testing.T) {
	obs := Observer{LatDeg: 35, LonDeg: -117}
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	for ra := 0.0; ra < 24; ra += 2 {
		for dec := -80.0; dec <= 80; dec += 20 {
			h := EquatorialToHorizontal(Equatorial{RAHours: ra, DecDeg: dec}, obs, at)
			if h.AzDeg < 0 || h.AzDeg >= 360 {
				t.Errorf("azimuth out of range for RA=%v Dec=%v: %v", ra, dec, h.AzDeg)
			}
			if h.AltDeg < -90 || h.AltDeg > 90 {
				t.Errorf("altitude out of range for RA=%v Dec=%v: %v", ra, dec, h.AltDeg)
			}
		}
	}
}

func TestEquatorialToHorizontal_EastQuadrant(t *testing.T) {
	// On the equator with LST=RA+6h... pick a star 6 hours east of the
	// meridian: it should sit near the eastern horizon (az ~ 90).
	obs := Observer{LatDeg: 0, LonDeg: 0}
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	lst := LocalSiderealTime(at, obs.LonDeg)

	east := Equatorial{RAHours: math.Mod(lst+6, 24), DecDeg: 0}
	h := EquatorialToHorizontal(east, obs, at)

	if math.Abs(h.AzDeg-90) > 0.1 {
		t.Errorf("star 6h east of meridian: az=%v, want ~90", h.AzDeg)
	}
	if math.Abs(h.AltDeg) > 0.1 {
		t.Errorf("star 6h east of meridian: alt=%v, want ~0", h.AltDeg)
	}
}

func TestEquatorialToCartesian_UnitNorm(t *testing.T) {
	for ra := 0.0; ra < 24; ra += 1.5 {
		for dec := -90.0; dec <= 90; dec += 15 {
			v := EquatorialToCartesian(ra, dec)
			if math.Abs(v.Norm()-1) > 1e-12 {
				t.Errorf("norm != 1 for RA=%v Dec=%v: %v", ra, dec, v.Norm())
			}
		}
	}
}

func TestEquatorialToCartesian_Axes(t *testing.T) {
	tests := []struct {
		name    string
		raHours float64
		decDeg  float64
		want    Vec3
	}{
		{"vernal equinox", 0, 0, Vec3{1, 0, 0}},
		{"RA 6h on equator", 6, 0, Vec3{0, 1, 0}},
		{"north celestial pole", 0, 90, Vec3{0, 0, 1}},
		{"south celestial pole", 12, -90, Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EquatorialToCartesian(tt.raHours, tt.decDeg)
			if got.Sub(tt.want).Norm() > 1e-12 {
				t.Errorf("EquatorialToCartesian(%v, %v) = %+v, want %+v",
					tt.raHours, tt.decDeg, got, tt.want)
			}
		})
	}
}

func TestHorizontalToCartesian_Axes(t *testing.T) {
	tests := []struct {
		name string
		h    Horizontal
		want Vec3
	}{
		{"north horizon", Horizontal{AltDeg: 0, AzDeg: 0}, Vec3{0, 0, 1}},
		{"east horizon", Horizontal{AltDeg: 0, AzDeg: 90}, Vec3{1, 0, 0}},
		{"south horizon", Horizontal{AltDeg: 0, AzDeg: 180}, Vec3{0, 0, -1}},
		{"zenith", Horizontal{AltDeg: 90, AzDeg: 0}, Vec3{0, 1, 0}},
		{"nadir", Horizontal{AltDeg: -90, AzDeg: 0}, Vec3{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HorizontalToCartesian(tt.h)
			if got.Sub(tt.want).Norm() > 1e-12 {
				t.Errorf("HorizontalToCartesian(%+v) = %+v, want %+v", tt.h, got, tt.want)
			}
		})
	}
}

func TestObserverClamped(t *testing.T) {
	o := Observer{LatDeg: 123, LonDeg: -400}.Clamped()
	if o.LatDeg != 90 || o.LonDeg != -180 {
		t.Errorf("Clamped() = %+v, want lat=90 lon=-180", o)
	}
}
