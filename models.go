package jira

// ServerInfo is the subset of /rest/api/2/serverInfo the client uses.
type ServerInfo struct {
	BaseURL        string `json:"baseUrl"`
	Version        string `json:"version"`
	DeploymentType string `json:"deploymentType,omitempty"`
	ServerTitle    string `json:"serverTitle,omitempty"`
}

type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self,omitempty"`
	Fields IssueFields `json:"fields"`
}

type IssueFields struct {
	Summary   string       `json:"summary"`
	Status    *IssueStatus `json:"status,omitempty"`
	IssueType *IssueType   `json:"issuetype,omitempty"`
}

type IssueStatus struct {
	Name string `json:"name"`
}

type IssueType struct {
	Name string `json:"name"`
}

type Comment struct {
	ID   string `json:"id,omitempty"`
	Body string `json:"body"`
}

// Launch links an Allure launch to a set of Jira issues.
type Launch struct {
	ID         int64    `json:"id,omitempty"`
	ExternalID string   `json:"externalId"`
	Name       string   `json:"name"`
	URL        string   `json:"url"`
	IssueKeys  []string `json:"issueKeys"`
	Date       int64    `json:"date"`
}

// TestResult links a single Allure test result to a set of Jira issues.
// Date is in epoch milliseconds.
type TestResult struct {
	ExternalID        string   `json:"externalId"`
	TestCaseID        string   `json:"testCaseId"`
	HistoryKey        string   `json:"historyKey"`
	Name              string   `json:"name"`
	URL               string   `json:"url"`
	Status            string   `json:"status"`
	Color             string   `json:"color,omitempty"`
	Date              int64    `json:"date"`
	IssueKeys         []string `json:"issueKeys"`
	LaunchExternalIDs []string `json:"launchExternalIds,omitempty"`
}

// ExportResult is the per-issue outcome of exporting a [TestResult].
type ExportResult struct {
	IssueKey string `json:"issueKey"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}
