package course

// Item kinds. Anything else is exported as a wiki page.
const (
	KindPage       = "page"
	KindAssignment = "assignment"
	KindDiscussion = "discussion"
	KindQuiz       = "quiz"
)

// Question kinds for quizzes.
const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionShortAnswer    = "short_answer"
	QuestionEssay          = "essay"
)

type Answer struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type QuizQuestion struct {
	Type    string   `json:"type"` // multiple_choice, short_answer, essay
	Text    string   `json:"text"`
	Points  float64  `json:"points,omitempty"` // defaults to 1 when zero
	Answers []Answer `json:"answers,omitempty"`
}

type Rating struct {
	Description string  `json:"description"`
	Points      float64 `json:"points"`
}

type Criterion struct {
	Description string   `json:"description"`
	Points      float64  `json:"points"`
	Ratings     []Rating `json:"ratings,omitempty"`
}

type Rubric struct {
	Title    string      `json:"title"`
	Criteria []Criterion `json:"criteria"`
}

// TotalPoints is the rubric's points possible: the sum of its criterion
// point values. It is always derived, never stored.
func (r Rubric) TotalPoints() float64 {
	var total float64
	for _, c := range r.Criteria {
		total += c.Points
	}
	return total
}

type Item struct {
	ID       string `json:"id"`
	Type     string `json:"type"` // page, assignment, discussion, quiz
	Title    string `json:"title"`
	Position int    `json:"position,omitempty"`

	Content   string         `json:"content,omitempty"` // HTML body
	Points    float64        `json:"points,omitempty"`
	Rubric    *Rubric        `json:"rubric,omitempty"`    // assignments only
	Questions []QuizQuestion `json:"questions,omitempty"` // quizzes only
	Prompt    string         `json:"prompt,omitempty"`    // discussion fallback when content absent
}

type Module struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position,omitempty"`
	Items    []Item `json:"items"`
}

type Course struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	WelcomeMessage string   `json:"welcome_message,omitempty"` // HTML
	Modules        []Module `json:"modules"`

	CreatedAt int64 `json:"created_at,omitempty"`
}
