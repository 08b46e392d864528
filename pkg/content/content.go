package content

// Static content records backing the portal's supplementary sections. All
// collections are optional: a missing data file leaves the collection empty.

type Banner struct {
	Id      string `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

type Sponsor struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type Testimonial struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Avatar string `json:"avatar,omitempty"`
}

type Article struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Date    string `json:"date"`
	Read    int    `json:"read"`
	Image   string `json:"image"`
}

type Coordinator struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

type Directory struct {
	Faculty  []Coordinator `json:"faculty"`
	Students []Coordinator `json:"students"`
}

type FAQ struct {
	Id string `json:"id"`
	Q  string `json:"q"`
	A  string `json:"a"`
}

type Role struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

type OnboardingConfig struct {
	Headline string `json:"headline"`
	Subtitle string `json:"subtitle"`
	Roles    []Role `json:"roles"`
}
