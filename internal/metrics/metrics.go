// Package metrics derives dashboard counters from the request collection.
// Nothing is cached; every fetch re-derives from a full read of ai_requests.
package metrics

import "github.com/sjpathak2211/ai-dashboard/internal/models"

// Compute folds the request collection into dashboard metrics for one user.
// TotalActiveProjects counts every request in an active status regardless of
// owner; the remaining counters are scoped to userID. The asymmetry is the
// dashboard's "your progress against the whole team's load" view.
func Compute(requests []models.AIRequest, userID string) models.DashboardMetrics {
	var m models.DashboardMetrics

	for _, req := range requests {
		if req.Status.IsActive() {
			m.TotalActiveProjects++
		}

		if req.UserID != userID {
			continue
		}

		m.TotalRequests++
		if req.Status.IsActive() {
			m.YourActiveProjects++
		}
		switch req.Status {
		case models.StatusDenied:
			m.DeniedRequests++
		case models.StatusComplete:
			m.CompletedRequests++
		case models.StatusInProgress:
			m.InProgressRequests++
		}
	}

	return m
}
