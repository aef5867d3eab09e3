// upkraft-crm/internal/revenue/source.go
package revenue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// TransactionSource fetches the transaction snapshot from a collaborator
// endpoint returning {"success": bool, "transactions": [...]}.
type TransactionSource struct {
	URL    string
	Client *http.Client
}

// RosterSource fetches the academy's tutor roster for student-count
// enrichment: {"success": bool, "tutors": [{"_id", "isVerified", "studentCount"}]}.
type RosterSource struct {
	URL    string
	Client *http.Client
}

// RosterTutor is one tutor record from the roster endpoint.
type RosterTutor struct {
	ID           string `json:"_id"`
	IsVerified   bool   `json:"isVerified"`
	StudentCount int    `json:"studentCount"`
}

type transactionListResponse struct {
	Success      bool          `json:"success"`
	Transactions []Transaction `json:"transactions"`
}

type rosterResponse struct {
	Success bool          `json:"success"`
	Tutors  []RosterTutor `json:"tutors"`
}

// Fetch downloads the current transaction snapshot. Cancellation of ctx (the
// caller navigating away) aborts the request.
func (s *TransactionSource) Fetch(ctx context.Context) ([]Transaction, error) {
	var resp transactionListResponse
	if err := getJSON(ctx, s.Client, s.URL, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("transaction source %s reported failure", s.URL)
	}
	return resp.Transactions, nil
}

// Lookup returns a RosterLookup backed by a single roster fetch. When the
// roster is unreachable every lookup degrades to a zero student count instead
// of failing the report.
func (s *RosterSource) Lookup(ctx context.Context) RosterLookup {
	var resp rosterResponse
	if err := getJSON(ctx, s.Client, s.URL, &resp); err != nil || !resp.Success {
		return func(string) (int, error) { return 0, nil }
	}

	counts := make(map[string]int, len(resp.Tutors))
	for _, t := range resp.Tutors {
		counts[t.ID] = t.StudentCount
	}
	return func(tutorID string) (int, error) {
		return counts[tutorID], nil
	}
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
