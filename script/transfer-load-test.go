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
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Route is one transfer path between two seeded demo accounts
type Route struct {
	Name            string
	UserID          string
	FromAccountID   string
	ToAccountNumber string
}

// TransferPayload mirrors the POST /api/transactions body
type TransferPayload struct {
	FromAccountID   string          `json:"fromAccountId"`
	ToAccountNumber string          `json:"toAccountNumber"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Route        string
	StatusCode   int
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	Created       int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	RouteCounts   map[string]int
	ErrorCounts   map[string]int
	Lock          sync.Mutex
}

// Transfers in both directions between the seeded holders so that lock ordering is exercised
var routes = []Route{
	{"alice->bob", "11111111-1111-4111-8111-111111111111", "a1111111-0000-4000-8000-000000000001", "2000000001"},
	{"bob->alice", "22222222-2222-4222-8222-222222222222", "b2222222-0000-4000-8000-000000000001", "1000000001"},
	{"alice->savings", "11111111-1111-4111-8111-111111111111", "a1111111-0000-4000-8000-000000000001", "1000000002"},
	{"savings->alice", "11111111-1111-4111-8111-111111111111", "a1111111-0000-4000-8000-000000000002", "1000000001"},
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 500, "Total number of transfers to submit")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", os.Getenv("LEDGER_JWT_SECRET"), "HS256 secret used to sign bearer tokens")
	maxAmount := flag.Int64("max", 2500, "Largest transfer amount in minor units")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	if *secret == "" {
		fmt.Println("a signing secret is required (-secret or LEDGER_JWT_SECRET)")
		os.Exit(2)
	}

	tokens := make(map[string]string)
	for _, route := range routes {
		if _, ok := tokens[route.UserID]; ok {
			continue
		}
		token, err := signToken(*secret, route.UserID)
		if err != nil {
			fmt.Printf("failed to sign token: %v\n", err)
			os.Exit(1)
		}
		tokens[route.UserID] = token
	}

	fmt.Printf("Load testing %s with %d transfers over %d routes\n", *baseURL, *totalRequests, len(routes))
	fmt.Printf("Concurrency: %d goroutines, delay %d ms\n", *concurrency, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[int]int),
		RouteCounts:   make(map[string]int),
		ErrorCounts:   make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	results := make(chan TestResult, *totalRequests)
	client := &http.Client{Timeout: 10 * time.Second}

	startTime := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jobID := range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				route := routes[rand.Intn(len(routes))]
				amount := decimal.New(rand.Int63n(*maxAmount)+1, -2)
				results <- submit(client, *baseURL, tokens[route.UserID], route, amount, jobID)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.Lock.Lock()
		stats.RouteCounts[result.Route]++
		if result.Error != nil {
			stats.ErrorCounts[result.Error.Error()]++
		} else {
			stats.StatusCounts[result.StatusCode]++
			if result.StatusCode == http.StatusCreated {
				stats.Created++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		}
		stats.Lock.Unlock()
	}
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func signToken(secret, userID string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func submit(client *http.Client, baseURL, token string, route Route, amount decimal.Decimal, jobID int) TestResult {
	body, err := json.Marshal(TransferPayload{
		FromAccountID:   route.FromAccountID,
		ToAccountNumber: route.ToAccountNumber,
		Amount:          amount,
		Description:     fmt.Sprintf("load test %d", jobID),
	})
	if err != nil {
		return TestResult{Route: route.Name, Error: err}
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/transactions", bytes.NewReader(body))
	if err != nil {
		return TestResult{Route: route.Name, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return TestResult{Route: route.Name, ResponseTime: elapsed, Error: err}
	}
	_ = resp.Body.Close()

	return TestResult{Route: route.Name, StatusCode: resp.StatusCode, ResponseTime: elapsed}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Committed (201):     %d (%.1f%%)\n", stats.Created,
		float64(stats.Created)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Committed TPS:       %.2f\n", float64(stats.Created)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}

	fmt.Println("\n----------------- ROUTES -----------------")
	for name, count := range stats.RouteCounts {
		fmt.Printf("%-15s: %d\n", name, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
