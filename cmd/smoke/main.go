package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := os.Getenv("CINESCENE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	client := &http.Client{Timeout: 60 * time.Second}

	fmt.Println("Starting smoke test against", baseURL)

	fmt.Println("1. Health...")
	if _, ok := send(client, http.MethodGet, baseURL+"/health", nil); !ok {
		fmt.Println("FAILED: Health")
		os.Exit(1)
	}
	fmt.Println("PASSED: Health")

	fmt.Println("2. Single scene...")
	body, ok := send(client, http.MethodPost, baseURL+"/v1/scenes", map[string]string{
		"prompt": `In a cozy cafe, Alice asks Bob, "Do you want coffee?" Bob smiles. "Sure!"`,
	})
	if !ok {
		fmt.Println("FAILED: Single scene")
		os.Exit(1)
	}
	var scene struct {
		Tier  string `json:"tier"`
		Scene struct {
			Environment string `json:"environment"`
			Duration    int    `json:"duration_estimate"`
		} `json:"scene"`
	}
	if err := json.Unmarshal(body, &scene); err != nil || scene.Scene.Duration < 5 || scene.Scene.Duration > 30 {
		fmt.Printf("FAILED: Single scene returned unexpected body: %s\n", body)
		os.Exit(1)
	}
	fmt.Printf("PASSED: Single scene (tier=%s, environment=%q)\n", scene.Tier, scene.Scene.Environment)

	fmt.Println("3. Script...")
	if _, ok := send(client, http.MethodPost, baseURL+"/v1/scripts", map[string]string{
		"script": "INT. KITCHEN - NIGHT\nAlice: \"Who's there?\"\n\nEXT. STREET - DAY\nBob runs away.",
	}); !ok {
		fmt.Println("FAILED: Script")
		os.Exit(1)
	}
	fmt.Println("PASSED: Script")

	fmt.Println("Smoke test completed successfully!")
}

func send(client *http.Client, method, url string, payload any) ([]byte, bool) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Error marshaling payload: %v\n", err)
			return nil, false
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Response (%d): %s\n", resp.StatusCode, string(body))
	return body, resp.StatusCode >= 200 && resp.StatusCode < 300
}
