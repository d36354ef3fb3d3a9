package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// apiResponse is the envelope every BitPort endpoint answers with
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// session is a registered user and its bearer token
type session struct {
	Email string
	Token string
}

// Scenario is one kind of request the workers pick from
type Scenario struct {
	Name   string
	Method string
	Path   string
	Body   any
	Weight int
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	ScenarioLatency    map[string]time.Duration
	Lock               sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	users := flag.Int("u", 3, "Number of users to register and spread load across")
	baseURL := flag.String("url", "http://localhost:5000/api", "Base URL of the API including its base path")
	pairsStr := flag.String("pairs", "bitcoin:usd,ethereum:usd,bitcoin:eth", "Comma-separated from:to pairs to swap")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 15 * time.Second}

	sessions, err := setupSessions(client, *baseURL, *users)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup failed: %v\n", err)
		os.Exit(1)
	}

	scenarios := buildScenarios(*pairsStr)

	fmt.Printf("Load testing %s with %d users\n", *baseURL, len(sessions))
	fmt.Printf("Scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
		ScenarioLatency: make(map[string]time.Duration),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, sessions, scenarios, jobs, results)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			stats.Lock.Unlock()
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, *totalRequests, float64(completed)/float64(*totalRequests)*100)
			}
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

// setupSessions registers throwaway users and logs each of them in
func setupSessions(client *http.Client, baseURL string, users int) ([]session, error) {
	if users <= 0 {
		users = 1
	}

	sessions := make([]session, 0, users)
	for i := 0; i < users; i++ {
		email := fmt.Sprintf("load-%s@bitport.test", uuid.NewString())
		password := uuid.NewString()

		status, _, err := call(client, http.MethodPost, baseURL+"/auth/register", "", map[string]string{
			"name":     fmt.Sprintf("Load User %d", i+1),
			"email":    email,
			"password": password,
		})
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", email, err)
		}
		if status != http.StatusCreated {
			return nil, fmt.Errorf("register %s: unexpected status %d", email, status)
		}

		status, resp, err := call(client, http.MethodPost, baseURL+"/auth/login", "", map[string]string{
			"email":    email,
			"password": password,
		})
		if err != nil {
			return nil, fmt.Errorf("login %s: %w", email, err)
		}
		if status != http.StatusOK || resp.Token == "" {
			return nil, fmt.Errorf("login %s: unexpected status %d", email, status)
		}

		sessions = append(sessions, session{Email: email, Token: resp.Token})
	}
	return sessions, nil
}

// buildScenarios mixes swaps with history and search reads, reads weighted higher
func buildScenarios(pairs string) []Scenario {
	var scenarios []Scenario
	for _, pair := range strings.Split(pairs, ",") {
		from, to, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || from == "" || to == "" {
			continue
		}
		scenarios = append(scenarios, Scenario{
			Name:   fmt.Sprintf("swap %s->%s", from, to),
			Method: http.MethodPost,
			Path:   "/swap/swap",
			Body:   map[string]string{"fromCurrency": from, "toCurrency": to, "amount": "0.01"},
			Weight: 1,
		})
		scenarios = append(scenarios, Scenario{
			Name:   "search " + from,
			Method: http.MethodGet,
			Path:   "/swap/search?currency=" + from,
			Weight: 1,
		})
	}

	return append(scenarios,
		Scenario{Name: "history", Method: http.MethodGet, Path: "/swap/history?page=1&limit=10", Weight: 3},
		Scenario{Name: "history by amount", Method: http.MethodGet, Path: "/swap/history?sort=amount&order=asc", Weight: 1},
		Scenario{Name: "profile", Method: http.MethodGet, Path: "/auth/profile", Weight: 1},
	)
}

func pickScenario(scenarios []Scenario) Scenario {
	total := 0
	for _, s := range scenarios {
		total += s.Weight
	}
	n := rand.Intn(total)
	for _, s := range scenarios {
		if n < s.Weight {
			return s
		}
		n -= s.Weight
	}
	return scenarios[len(scenarios)-1]
}

func worker(client *http.Client, baseURL string, delayMs int, sessions []session,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		user := sessions[rand.Intn(len(sessions))]
		scenario := pickScenario(scenarios)

		startTime := time.Now()
		status, resp, err := call(client, scenario.Method, baseURL+scenario.Path, user.Token, scenario.Body)
		result := TestResult{
			Scenario:     scenario.Name,
			ResponseTime: time.Since(startTime),
			StatusCode:   status,
		}

		switch {
		case err != nil:
			result.Error = err
		case status < 200 || status >= 300:
			result.Error = fmt.Errorf("HTTP %d: %s", status, resp.Message)
		default:
			result.Success = true
		}

		results <- result
	}
}

func call(client *http.Client, method, url, token string, body any) (int, apiResponse, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return 0, apiResponse{}, err
		}
	}

	req, err := http.NewRequest(method, url, &payload)
	if err != nil {
		return 0, apiResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, apiResponse{}, err
	}
	defer resp.Body.Close()

	var decoded apiResponse
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded, nil
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.ScenarioStats[result.Scenario]++
	s.ScenarioLatency[result.Scenario] += result.ResponseTime
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Successful TPS:      %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIOS -----------------")
	names := make([]string, 0, len(stats.ScenarioStats))
	for name := range stats.ScenarioStats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		count := stats.ScenarioStats[name]
		fmt.Printf("%-28s: %4d requests, avg %v\n", name, count, stats.ScenarioLatency[name]/time.Duration(count))
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-50s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
