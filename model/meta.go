package model

// Option pairs a stored enum value with its Serbian UI label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Label sets backing the dashboard's select inputs.
var (
	Categories = []Option{
		{Value: string(CategoryArticle), Label: "Članak"},
		{Value: string(CategoryVideo), Label: "Video"},
		{Value: string(CategoryInterview), Label: "Intervju"},
		{Value: string(CategoryResearch), Label: "Istraživanje"},
		{Value: string(CategoryEditing), Label: "Montaža"},
		{Value: string(CategorySocialMedia), Label: "Društvene mreže"},
		{Value: string(CategoryOther), Label: "Ostalo"},
	}

	Statuses = []Option{
		{Value: string(StatusInProgress), Label: "U radu"},
		{Value: string(StatusCompleted), Label: "Završeno"},
		{Value: string(StatusPublished), Label: "Objavljeno"},
	}

	Priorities = []Option{
		{Value: string(PriorityHigh), Label: "Visok"},
		{Value: string(PriorityMedium), Label: "Srednji"},
		{Value: string(PriorityLow), Label: "Nizak"},
	}

	// Roles are the team's well-known display names; the API still accepts
	// any name and creates the user on first use.
	Roles = []Option{
		{Value: "novinar", Label: "Novinar"},
		{Value: "snimatelj", Label: "Snimatelj"},
		{Value: "saradnik", Label: "Saradnik"},
		{Value: "agencija", Label: "Agencija"},
	}
)
