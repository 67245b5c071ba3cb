package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type TeamRequest struct {
	Name             string `json:"name"`
	RegistrationDate string `json:"registrationDate"`
	GroupNumber      int    `json:"groupNumber"`
}

type MatchRequest struct {
	TeamAName  string `json:"teamAName"`
	TeamBName  string `json:"teamBName"`
	TeamAGoals int    `json:"teamAGoals"`
	TeamBGoals int    `json:"teamBGoals"`
}

var (
	targetHost = flag.String("target", "http://localhost:8080", "base URL of a running instance")
	rps        = flag.Int("rps", 5, "requests per second")
	duration   = flag.Duration("duration", 3*time.Minute, "attack duration")
	teamsPer   = flag.Int("teams", 8, "teams seeded per group")
)

var (
	groups = map[int][]string{}
	httpc  = &http.Client{Timeout: 10 * time.Second}
)

func postJSON(url string, body any) (int, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Seed
func seedData() error {
	log.Println("Seeding: registering teams...")

	prefix := fmt.Sprintf("load-%d", time.Now().Unix())
	var batch []TeamRequest
	for g := 1; g <= 2; g++ {
		for i := 1; i <= *teamsPer; i++ {
			name := fmt.Sprintf("%s-g%d-t%02d", prefix, g, i)
			batch = append(batch, TeamRequest{
				Name:             name,
				RegistrationDate: fmt.Sprintf("%02d/%02d", 1+rand.Intn(28), 1+rand.Intn(12)),
				GroupNumber:      g,
			})
			groups[g] = append(groups[g], name)
		}
	}

	status, err := postJSON(*targetHost+"/api/team/addTeams", batch)
	if err != nil {
		return err
	}
	if status >= 400 {
		return fmt.Errorf("addTeams returned %d", status)
	}

	log.Printf("Seed completed: teams=%d\n", len(batch))
	return nil
}

func randomPair(group int) (string, string) {
	names := groups[group]
	a := rand.Intn(len(names))
	b := rand.Intn(len(names) - 1)
	if b >= a {
		b++
	}
	return names[a], names[b]
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()
		group := 1 + rand.Intn(2)

		// 50% GET rankings
		if r < 0.50 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/api/team/rankings/%d", *targetHost, group)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 20% GET outcome
		if r < 0.70 {
			team := groups[group][rand.Intn(len(groups[group]))]
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/api/team/rankings/getOutcome/%s/%d", *targetHost, url.PathEscape(team), group)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 10% GET team
		if r < 0.80 {
			team := groups[group][rand.Intn(len(groups[group]))]
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/api/team/getTeam/%s", *targetHost, url.PathEscape(team))
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 20% POST addMatches, несколько матчей в пакете
		batch := make([]MatchRequest, 1+rand.Intn(4))
		for i := range batch {
			a, b := randomPair(group)
			batch[i] = MatchRequest{
				TeamAName:  a,
				TeamBName:  b,
				TeamAGoals: rand.Intn(5),
				TeamBGoals: rand.Intn(5),
			}
		}
		body, _ := json.Marshal(batch)
		t.Method = http.MethodPost
		t.URL = *targetHost + "/api/match/addMatches"
		t.Body = body
		t.Header = map[string][]string{"Content-Type": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: *rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", *targetHost, *duration)
	for res := range attacker.Attack(targeter, rate, *duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	flag.Parse()

	if *teamsPer < 2 {
		log.Fatal("need at least 2 teams per group")
	}

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
