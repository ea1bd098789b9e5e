package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Генератор проходит полный сценарий бронирования против запущенного сервиса,
// чтобы в Grafana были живые метрики диспетчеризации и движения курьеров.
var (
	scenariosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_booking_scenarios_total",
		Help: "Количество пройденных сценариев бронирования по результату",
	}, []string{"result"})

	scenarioDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_booking_scenario_duration_seconds",
		Help:    "Длительность сценария бронирования в секундах",
		Buckets: []float64{0.5, 1, 2, 4, 8, 16},
	})
)

// окрестности карты по умолчанию
const (
	baseLat = 4.8156
	baseLng = 7.0498
	spread  = 0.02
)

type step struct {
	method string
	path   string
	body   any
	want   int
}

func main() {
	target := envOr("BOOKING_URL", "http://localhost:8080")
	pause, err := time.ParseDuration(envOr("TRAFFIC_PAUSE", "5s"))
	if err != nil {
		log.Fatalf("invalid TRAFFIC_PAUSE: %v", err)
	}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":2112", nil); err != nil { //nolint:gosec // служебный порт метрик
			log.Printf("metrics server: %v", err)
		}
	}()

	client := &http.Client{Timeout: 15 * time.Second}
	for n := 0; ; n++ {
		start := time.Now()
		result := "ok"
		if err := runScenario(client, target, n); err != nil {
			log.Printf("scenario failed: %v", err)
			result = "failed"
		}
		scenariosTotal.WithLabelValues(result).Inc()
		scenarioDuration.Observe(time.Since(start).Seconds())

		time.Sleep(pause)
	}
}

// runScenario бронирует одну доставку. Каждый третий прогон сначала отменяет все поездки,
// иначе лимит активных поездок быстро исчерпается.
func runScenario(client *http.Client, target string, n int) error {
	var steps []step
	if n%3 == 0 {
		steps = append(steps, step{http.MethodDelete, "/rides?confirm=true", nil, http.StatusOK})
	}
	steps = append(steps, []step{
		{http.MethodPost, "/booking/reset", map[string]bool{"keep_package": false}, http.StatusNoContent},
		{http.MethodPost, "/booking/location/open", map[string]string{"target": "pickup"}, http.StatusOK},
		{http.MethodPost, "/booking/location/pick", randomPoint(), http.StatusOK},
		{http.MethodPost, "/booking/location/confirm", nil, http.StatusOK},
		{http.MethodPost, "/booking/location/open", map[string]string{"target": "dropoff"}, http.StatusOK},
		{http.MethodPost, "/booking/location/pick", randomPoint(), http.StatusOK},
		{http.MethodPost, "/booking/location/confirm", nil, http.StatusOK},
		{http.MethodPost, "/booking/step", map[string]string{"direction": "next"}, http.StatusOK},
		{http.MethodPut, "/booking/contact", map[string]string{
			"phone":    "0801" + strconv.Itoa(1000000+rand.IntN(8999999)),
			"whatsapp": "08012345678",
			"email":    "load@example.com",
		}, http.StatusNoContent},
		{http.MethodPost, "/booking/step", map[string]string{"direction": "next"}, http.StatusOK},
		{http.MethodPost, "/booking/submit", nil, http.StatusCreated},
		{http.MethodGet, "/rides", nil, http.StatusOK},
	}...)

	for _, s := range steps {
		if err := do(client, target, s); err != nil {
			return err
		}
	}
	return nil
}

func do(client *http.Client, target string, s step) error {
	var body bytes.Buffer
	if s.body != nil {
		if err := json.NewEncoder(&body).Encode(s.body); err != nil {
			return fmt.Errorf("%s %s: encode: %w", s.method, s.path, err)
		}
	}

	req, err := http.NewRequest(s.method, target+s.path, &body) //nolint:noctx // генератор живет до SIGTERM
	if err != nil {
		return fmt.Errorf("%s %s: %w", s.method, s.path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", s.method, s.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != s.want {
		return fmt.Errorf("%s %s: status %d, want %d", s.method, s.path, resp.StatusCode, s.want)
	}
	return nil
}

func randomPoint() map[string]float64 {
	return map[string]float64{
		"lat": baseLat + (rand.Float64()-0.5)*spread,
		"lng": baseLng + (rand.Float64()-0.5)*spread,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
