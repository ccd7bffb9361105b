package wind

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"
)

const stampLayout = "2006010215"

type ForecastWinds []*Wind

func (w ForecastWinds) String() string {
	if len(w) == 0 {
		return "()"
	}
	res := ""
	res += w[0].Date.Format(stampLayout) + "(" + filepath.Base(w[0].File)
	if len(w) > 1 {
		res += "," + filepath.Base(w[1].File)
	}
	res += ")"
	return res
}

// Winds holds the forecasts found in a directory of GRIB files named
// <run stamp>.f<hour>, e.g. 2024111006.f003.
type Winds struct {
	dir    string
	origin time.Time
	winds  map[string](ForecastWinds)
	lock   sync.RWMutex
	now    func() time.Time
}

// InitWinds loads the forecasts of dir. origin is the date of the start of
// the race, t=0 for GetUV.
func InitWinds(dir string, origin time.Time) *Winds {
	w := &Winds{
		dir:    dir,
		origin: origin.UTC(),
		winds:  make(map[string](ForecastWinds)),
		now:    time.Now,
	}
	w.Merge()

	return w
}

// Schedule refreshes the forecasts every interval seconds.
func (w *Winds) Schedule(interval uint64) *gocron.Scheduler {
	s := gocron.NewScheduler()
	job := s.Every(interval).Seconds()
	job.Do(w.Merge)

	return s
}

func (w *Winds) Origin() time.Time {
	return w.origin
}

func (w *Winds) Len() int {
	w.lock.RLock()
	defer w.lock.RUnlock()

	return len(w.winds)
}

func (w *Winds) FindWinds(m time.Time) (ForecastWinds, ForecastWinds, float64) {
	w.lock.RLock()
	defer w.lock.RUnlock()

	if len(w.winds) == 0 {
		return nil, nil, 0
	}

	stamp := m.UTC().Format(stampLayout)

	keys := make([]string, 0, len(w.winds))
	for k := range w.winds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if keys[0] > stamp {
		return w.winds[keys[0]], nil, 0
	}
	for i := range keys {
		if keys[i] > stamp {
			h := m.Sub(w.winds[keys[i-1]][0].Date).Minutes()
			delta := w.winds[keys[i]][0].Date.Sub(w.winds[keys[i-1]][0].Date).Minutes()
			return w.winds[keys[i-1]], w.winds[keys[i]], h / delta
		}
	}
	return w.winds[keys[len(keys)-1]], nil, 0
}

// At returns the wind direction in degrees and its speed in m/s, false when
// no forecast is loaded.
func (w *Winds) At(m time.Time, lat float64, lon float64) (float64, float64, bool) {
	w1, w2, h := w.FindWinds(m)
	if w1 == nil {
		return 0, 0, false
	}
	d, s := Interpolate(w1, w2, lat, lon, h)
	return d, s, true
}

// GetUV returns the wind t hours after origin, calm when no forecast is
// loaded.
func (w *Winds) GetUV(lat float64, lon float64, t float64) (float64, float64) {
	m := w.origin.Add(time.Duration(t * float64(time.Hour)))
	w1, w2, h := w.FindWinds(m)
	if w1 == nil {
		return 0, 0
	}
	return InterpolateUV(w1, w2, lat, lon, h)
}

func (w *Winds) add(stamp string, wind *Wind) {
	w.lock.Lock()
	defer w.lock.Unlock()

	w.winds[stamp] = append(w.winds[stamp], wind)
}

// forecastDate parses 2024111006.f003 into the date the forecast is for.
func forecastDate(file string) (time.Time, error) {
	parts := strings.Split(file, ".")
	if len(parts) < 2 || len(parts[1]) < 2 {
		return time.Time{}, &os.PathError{Op: "parse", Path: file, Err: os.ErrInvalid}
	}

	t, err := time.Parse(stampLayout, parts[0])
	if err != nil {
		return time.Time{}, err
	}
	h, err := strconv.Atoi(parts[1][1:])
	if err != nil {
		return time.Time{}, err
	}

	return t.Add(time.Hour * time.Duration(h)), nil
}

// forecastFiles lists the files to load, keyed by the hour they forecast
// relative to now.
func (w *Winds) forecastFiles() map[int][]string {
	var files []string
	err := filepath.Walk(w.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.WithError(err).Errorf("Error walking file '%s'", path)
		} else if info.Mode().IsRegular() && !strings.HasSuffix(info.Name(), ".tmp") {
			files = append(files, info.Name())
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Error walking grib files")
		return nil
	}

	sort.Strings(files)

	forecasts := make(map[int][]string)

	for cpt, f := range files {
		t, err := forecastDate(f)
		if err != nil {
			log.WithError(err).Warnf("Skip grib file '%s'", f)
			continue
		}

		forecastHour := int(math.Round(t.Sub(w.now()).Hours()))

		if forecastHour < -3 && cpt < len(files)-1 {
			continue
		}

		_, found := forecasts[forecastHour]

		// the current forecast is kept even when a newer run is there
		if !found || forecastHour >= 0 {
			forecasts[forecastHour] = append(forecasts[forecastHour], f)
		}
	}
	return forecasts
}

// Merge drops the forecasts whose file is gone and loads the new ones.
func (w *Winds) Merge() error {
	w.lock.Lock()
	var toRemove []string
	for k, ws := range w.winds {
		if _, err := os.Stat(ws[0].File); os.IsNotExist(err) {
			toRemove = append(toRemove, k)
		}
	}
	for _, k := range toRemove {
		log.Debugf("Remove from winds %s", k)
		delete(w.winds, k)
	}
	w.lock.Unlock()

	forecasts := w.forecastFiles()

	var keys []int
	for k := range forecasts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		for _, file := range forecasts[k] {
			date, _ := forecastDate(file)
			sdate := date.Format(stampLayout)
			path := filepath.Join(w.dir, file)

			w.lock.RLock()
			ws, found := w.winds[sdate]
			w.lock.RUnlock()
			if found && (len(ws) == 2 || ws[0].File == path) {
				continue
			}

			wind, err := Init(date, path)
			if err != nil {
				log.WithError(err).Errorf("Error loading grib file '%s'", file)
				continue
			}
			log.Debugf("Init %s %s", sdate, file)
			w.add(sdate, &wind)
		}
	}

	return nil
}
