package model

// RepositorySummary is the subset of a github repository record the tool
// needs: the owner login can differ from the queried user when the
// repository belongs to an organization.
type RepositorySummary struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// LanguageBytes maps a language name (as returned by github, case-sensitive)
// to the number of bytes of code attributed to it.
type LanguageBytes map[string]int
