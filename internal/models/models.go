package models

import "time"

type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusInProgress ProjectStatus = "In Progress"
	StatusTesting    ProjectStatus = "Testing"
	StatusComplete   ProjectStatus = "Complete"
	StatusOnHold     ProjectStatus = "On Hold"
	StatusDenied     ProjectStatus = "Denied"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusTesting, StatusComplete, StatusOnHold, StatusDenied:
		return true
	}
	return false
}

// IsActive reports whether a request in this status counts toward the
// active-projects metrics.
func (s ProjectStatus) IsActive() bool {
	return s == StatusInProgress || s == StatusTesting
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type Department string

const (
	DeptClinicalOps Department = "Clinical Operations"
	DeptIT          Department = "IT"
	DeptResearch    Department = "Research"
	DeptQA          Department = "Quality Assurance"
	DeptAdmin       Department = "Administration"
	DeptFinance     Department = "Finance"
)

func (d Department) IsValid() bool {
	switch d {
	case DeptClinicalOps, DeptIT, DeptResearch, DeptQA, DeptAdmin, DeptFinance:
		return true
	}
	return false
}

type BacklogStatus string

const (
	BacklogClear   BacklogStatus = "clear"
	BacklogBusy    BacklogStatus = "busy"
	BacklogSwamped BacklogStatus = "swamped"
)

func (b BacklogStatus) IsValid() bool {
	return b == BacklogClear || b == BacklogBusy || b == BacklogSwamped
}

type ActivityType string

const (
	ActivityProjectCreated   ActivityType = "project_created"
	ActivityProjectUpdated   ActivityType = "project_updated"
	ActivityRequestSubmitted ActivityType = "request_submitted"
	ActivityProjectCompleted ActivityType = "project_completed"
	ActivityRequestUpdated   ActivityType = "request_updated"
	ActivityStatusChanged    ActivityType = "status_changed"
	ActivityProjectConverted ActivityType = "project_converted"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Picture      string    `json:"picture,omitempty"`
	IsAdmin      bool      `json:"isAdmin"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type AIRequest struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Department      Department    `json:"department"`
	Priority        Priority      `json:"priority"`
	EstimatedImpact string        `json:"estimatedImpact"`
	ContactInfo     string        `json:"contactInfo"`
	Status          ProjectStatus `json:"status"`
	Progress        int           `json:"progress"`
	AdminNotes      string        `json:"adminNotes,omitempty"`
	UserID          string        `json:"userId"`
	UserEmail       string        `json:"userEmail"`
	UserName        string        `json:"userName"`
	SubmittedAt     time.Time     `json:"submittedAt"`
	LastUpdated     *time.Time    `json:"lastUpdated,omitempty"`
}

type Project struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	Status              ProjectStatus `json:"status"`
	Progress            int           `json:"progress"`
	AssignedTeam        string        `json:"assignedTeam"`
	StartDate           time.Time     `json:"startDate"`
	EstimatedCompletion time.Time     `json:"estimatedCompletion"`
	Priority            Priority      `json:"priority"`
	Department          Department    `json:"department"`
	Budget              *int64        `json:"budget,omitempty"`
	Tags                []string      `json:"tags"`
}

type BacklogInfo struct {
	Status            BacklogStatus `json:"status"`
	Message           string        `json:"message"`
	EstimatedWaitTime string        `json:"estimatedWaitTime"`
}

type ActivityItem struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	User        string       `json:"user"`
	UserID      string       `json:"userId,omitempty"`
	RequestID   string       `json:"requestId,omitempty"`
}

type DashboardMetrics struct {
	TotalActiveProjects int `json:"totalActiveProjects"`
	YourActiveProjects  int `json:"yourActiveProjects"`
	DeniedRequests      int `json:"deniedRequests"`
	TotalRequests       int `json:"totalRequests"`
	CompletedRequests   int `json:"completedRequests"`
	InProgressRequests  int `json:"inProgressRequests"`
}
