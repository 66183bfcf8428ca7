// Package catalog holds the read-only portfolio content every page renders.
package catalog

// PersonalInfo is the owner's profile.
type PersonalInfo struct {
	Name         string `json:"name" yaml:"name" validate:"required"`
	Designation  string `json:"designation" yaml:"designation" validate:"required"`
	Subtitle     string `json:"subtitle" yaml:"subtitle" validate:"required"`
	Tagline      string `json:"tagline" yaml:"tagline" validate:"required"`
	Location     string `json:"location" yaml:"location" validate:"required"`
	Email        string `json:"email" yaml:"email" validate:"required,email"`
	Phone        string `json:"phone" yaml:"phone" validate:"required"`
	Experience   string `json:"experience" yaml:"experience" validate:"required"`
	Education    string `json:"education" yaml:"education" validate:"required"`
	GPA          string `json:"gpa" yaml:"gpa" validate:"required"`
	ProfileImage string `json:"profile_image" yaml:"profile_image" validate:"required"`
	Resume       string `json:"resume" yaml:"resume" validate:"required"`
}

// SkillEntry is a skill with a proficiency level in percent.
type SkillEntry struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Level       int    `json:"level" yaml:"level" validate:"min=0,max=100"`
	Description string `json:"description" yaml:"description"`
}

// ToolEntry is a tool with a single-glyph icon.
type ToolEntry struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`
}

// Skills groups skills by category.
type Skills struct {
	Testing     []SkillEntry `json:"testing" yaml:"testing" validate:"dive"`
	Tools       []ToolEntry  `json:"tools" yaml:"tools" validate:"dive"`
	Development []SkillEntry `json:"development" yaml:"development" validate:"dive"`
}

// ExperienceEntry is one role on the career timeline.
type ExperienceEntry struct {
	ID           int      `json:"id" yaml:"id" validate:"required"`
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Company      string   `json:"company" yaml:"company" validate:"required"`
	Period       string   `json:"period" yaml:"period"`
	Location     string   `json:"location" yaml:"location"`
	Type         string   `json:"type" yaml:"type"`
	Description  string   `json:"description" yaml:"description"`
	Achievements []string `json:"achievements" yaml:"achievements" validate:"min=1"`
}

// Project statuses.
const (
	StatusActive       = "Active"
	StatusInProduction = "In Production"
	StatusCompleted    = "Completed"
)

// Project categories used by the Projects page filter.
const (
	CategoryAutomation = "automation"
	CategoryDashboard  = "dashboard"
)

// ProjectEntry is one showcased project. At most one of GitHub and Link is
// normally set.
type ProjectEntry struct {
	ID           int      `json:"id" yaml:"id" validate:"required"`
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Image        string   `json:"image" yaml:"image"`
	GitHub       string   `json:"github,omitempty" yaml:"github,omitempty"`
	Link         string   `json:"link,omitempty" yaml:"link,omitempty"`
	Achievements []string `json:"achievements" yaml:"achievements"`
	Status       string   `json:"status" yaml:"status" validate:"oneof=Active 'In Production' Completed"`
	Category     string   `json:"category" yaml:"category" validate:"oneof=automation dashboard"`
	Snippet      string   `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// StatusUpcoming marks a certification not yet earned.
const StatusUpcoming = "upcoming"

// CertificationEntry is one certification. An empty Status means completed.
type CertificationEntry struct {
	ID     int      `json:"id" yaml:"id" validate:"required"`
	Title  string   `json:"title" yaml:"title" validate:"required"`
	Issuer string   `json:"issuer" yaml:"issuer"`
	Date   string   `json:"date" yaml:"date"`
	Image  string   `json:"image" yaml:"image"`
	Skills []string `json:"skills" yaml:"skills"`
	Status string   `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,oneof=upcoming"`
}

// Upcoming reports whether the certification is still being pursued.
func (c CertificationEntry) Upcoming() bool { return c.Status == StatusUpcoming }

// StatusOngoing marks education still in progress.
const StatusOngoing = "ongoing"

// EducationEntry is one degree or course.
type EducationEntry struct {
	ID           int      `json:"id" yaml:"id" validate:"required"`
	Degree       string   `json:"degree" yaml:"degree" validate:"required"`
	Institution  string   `json:"institution" yaml:"institution" validate:"required"`
	Period       string   `json:"period" yaml:"period"`
	GPA          string   `json:"gpa,omitempty" yaml:"gpa,omitempty"`
	Minor        string   `json:"minor,omitempty" yaml:"minor,omitempty"`
	Status       string   `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,oneof=ongoing"`
	Image        string   `json:"image" yaml:"image"`
	Achievements []string `json:"achievements,omitempty" yaml:"achievements,omitempty"`
	Focus        []string `json:"focus,omitempty" yaml:"focus,omitempty"`
}

// Ongoing reports whether the entry is still in progress.
func (e EducationEntry) Ongoing() bool { return e.Status == StatusOngoing }

// Testimonial is a quote from a colleague.
type Testimonial struct {
	ID       int    `json:"id" yaml:"id" validate:"required"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	Position string `json:"position" yaml:"position"`
	Content  string `json:"content" yaml:"content" validate:"required"`
	Image    string `json:"image" yaml:"image"`
	Rating   int    `json:"rating" yaml:"rating" validate:"min=0,max=5"`
}

// SocialLink is an external profile link. Icon is one of linkedin, github
// or mail.
type SocialLink struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	URL  string `json:"url" yaml:"url" validate:"required"`
	Icon string `json:"icon" yaml:"icon"`
}

// Stat is a headline number with its label.
type Stat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Section is a titled block of Markdown copy.
type Section struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

// Copy is the page prose that is not part of a collection.
type Copy struct {
	AboutIntro          string    `json:"about_intro" yaml:"about_intro"`
	AboutBio            string    `json:"about_bio" yaml:"about_bio"`
	AboutBeyond         Section   `json:"about_beyond" yaml:"about_beyond"`
	AboutStats          []Stat    `json:"about_stats" yaml:"about_stats"`
	SkillsIntro         string    `json:"skills_intro" yaml:"skills_intro"`
	SkillsPhilosophy    []Section `json:"skills_philosophy" yaml:"skills_philosophy"`
	ExperienceIntro     string    `json:"experience_intro" yaml:"experience_intro"`
	ExperienceStats     []Stat    `json:"experience_stats" yaml:"experience_stats"`
	ProjectsIntro       string    `json:"projects_intro" yaml:"projects_intro"`
	CertificationsIntro string    `json:"certifications_intro" yaml:"certifications_intro"`
	PlannedCerts        string    `json:"planned_certs" yaml:"planned_certs"`
	EducationIntro      string    `json:"education_intro" yaml:"education_intro"`
	EducationBenefits   []Section `json:"education_benefits" yaml:"education_benefits"`
	ContactIntro        string    `json:"contact_intro" yaml:"contact_intro"`
	ContactServices     []string  `json:"contact_services" yaml:"contact_services"`
	FooterBlurb         string    `json:"footer_blurb" yaml:"footer_blurb"`
	FooterServices      []string  `json:"footer_services" yaml:"footer_services"`
	HomeTools           []string  `json:"home_tools" yaml:"home_tools"`
}

// Catalog is the whole content set.
type Catalog struct {
	Personal       PersonalInfo         `json:"personal" yaml:"personal"`
	Skills         Skills               `json:"skills" yaml:"skills"`
	Experience     []ExperienceEntry    `json:"experience" yaml:"experience" validate:"dive"`
	Projects       []ProjectEntry       `json:"projects" yaml:"projects" validate:"dive"`
	Certifications []CertificationEntry `json:"certifications" yaml:"certifications" validate:"dive"`
	Education      []EducationEntry     `json:"education" yaml:"education" validate:"dive"`
	Testimonials   []Testimonial        `json:"testimonials" yaml:"testimonials" validate:"dive"`
	Social         []SocialLink         `json:"social" yaml:"social" validate:"dive"`
	Copy           Copy                 `json:"copy" yaml:"copy"`
}
