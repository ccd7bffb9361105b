package wind

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// uniform builds a global 1° grid with the same wind everywhere.
func uniform(date time.Time, u float64, v float64) *Wind {
	w := &Wind{Date: date, File: "test", Lat0: 90, Lon0: 0, ΔLat: 1, ΔLon: 1, NLat: 181, NLon: 360}
	us := make([]float64, 181*360)
	vs := make([]float64, 181*360)
	for i := range us {
		us[i] = u
		vs[i] = v
	}
	w.U = w.buildGrid(us)
	w.V = w.buildGrid(vs)
	return w
}

func TestBuildGridIsContinuous(t *testing.T) {
	w := uniform(time.Now(), 1, 2)

	if len(w.U) != 181 || len(w.U[0]) != 361 {
		t.Errorf("buildGrid() = %dx%d; want 181x361", len(w.U), len(w.U[0]))
	}
}

func TestInterpolate(t *testing.T) {
	// wind blowing to the north comes from the south
	w := uniform(time.Now(), 0, 5)

	d, s := Interpolate([]*Wind{w}, nil, 46.5, -1.8, 0)
	if math.Round(d) != 180 || math.Round(s) != 5 {
		t.Errorf("Interpolate(46.5, -1.8) = (%f, %f); want (180, 5)", d, s)
	}

	// edges of the grid
	d, s = Interpolate([]*Wind{w}, nil, -90, 179.9, 0)
	if math.Round(d) != 180 || math.Round(s) != 5 {
		t.Errorf("Interpolate(-90, 179.9) = (%f, %f); want (180, 5)", d, s)
	}
}

func TestInterpolateBetweenForecasts(t *testing.T) {
	now := time.Date(2024, 11, 10, 6, 0, 0, 0, time.UTC)
	w1 := uniform(now, 0, 4)
	w2 := uniform(now.Add(3*time.Hour), 0, 8)

	u, v := InterpolateUV([]*Wind{w1}, []*Wind{w2}, 10, 10, 0.25)
	if math.Abs(u) > 1e-9 || math.Abs(v-5) > 1e-9 {
		t.Errorf("InterpolateUV(h=0.25) = (%f, %f); want (0, 5)", u, v)
	}
}

func TestFindWinds(t *testing.T) {
	origin := time.Date(2024, 11, 10, 6, 0, 0, 0, time.UTC)
	w := &Winds{origin: origin, winds: make(map[string]ForecastWinds), now: time.Now}

	if w1, _, _ := w.FindWinds(origin); w1 != nil {
		t.Errorf("FindWinds() without forecast = %s; want nil", w1)
	}
	if u, v := w.GetUV(0, 0, 0); u != 0 || v != 0 {
		t.Errorf("GetUV() without forecast = (%f, %f); want (0, 0)", u, v)
	}

	w.add("2024111006", uniform(origin, 0, 4))
	w.add("2024111009", uniform(origin.Add(3*time.Hour), 0, 8))

	w1, w2, h := w.FindWinds(origin.Add(90 * time.Minute))
	if w1 == nil || w2 == nil || h != 0.5 {
		t.Errorf("FindWinds(+1h30) = (%s, %s, %f); want both forecasts and 0.5", w1, w2, h)
	}

	w1, w2, _ = w.FindWinds(origin.Add(-time.Hour))
	if w1 == nil || w1[0].Date != origin || w2 != nil {
		t.Errorf("FindWinds(-1h) = (%s, %s); want first forecast only", w1, w2)
	}

	w1, w2, _ = w.FindWinds(origin.Add(12 * time.Hour))
	if w1 == nil || w1[0].Date != origin.Add(3*time.Hour) || w2 != nil {
		t.Errorf("FindWinds(+12h) = (%s, %s); want last forecast only", w1, w2)
	}

	u, v := w.GetUV(0, 0, 1.5)
	if math.Abs(u) > 1e-9 || math.Abs(v-6) > 1e-9 {
		t.Errorf("GetUV(t=1.5) = (%f, %f); want (0, 6)", u, v)
	}
}

func TestForecastDate(t *testing.T) {
	d, err := forecastDate("2024111006.f003")
	if err != nil || !d.Equal(time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("forecastDate(2024111006.f003) = (%s, %v); want 2024-11-10 09:00", d, err)
	}

	for _, f := range []string{"README", "2024111006.f", "2024111006.fxx", "now.f003"} {
		if _, err := forecastDate(f); err == nil {
			t.Errorf("forecastDate(%s) = nil error; want error", f)
		}
	}
}

func TestMergeSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"2024111006.f003", "notes.txt", "2024111006.f006.tmp"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("not a grib"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	w := &Winds{dir: dir, winds: make(map[string]ForecastWinds), now: func() time.Time {
		return time.Date(2024, 11, 10, 6, 0, 0, 0, time.UTC)
	}}

	files := w.forecastFiles()
	if len(files) != 1 || len(files[3]) != 1 || files[3][0] != "2024111006.f003" {
		t.Errorf("forecastFiles() = %v; want map[3:[2024111006.f003]]", files)
	}

	if err := w.Merge(); err != nil {
		t.Errorf("Merge() = %v; want nil", err)
	}
	if w.Len() != 0 {
		t.Errorf("Merge() loaded %d forecasts from bad files; want 0", w.Len())
	}
}
