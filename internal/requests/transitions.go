package requests

import "github.com/sjpathak2211/ai-dashboard/internal/models"

// CanTransition reports whether a request may move between the two statuses.
// Admins pick the target status directly, so every pair is currently allowed;
// a stricter graph only needs to change this one function.
func CanTransition(from, to models.ProjectStatus) bool {
	return from.IsValid() && to.IsValid()
}
