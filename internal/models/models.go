package models

// Domain models matching the database schema in db/migrations/0001_init.sql.
// Timestamps are unix milliseconds.

// Project statuses.
const (
	ProjectPlanned   = "planned"
	ProjectOngoing   = "ongoing"
	ProjectCompleted = "completed"
)

type Project struct {
	ID          int64   `json:"id" db:"id"`
	Slug        string  `json:"slug" db:"slug"`
	Name        Text    `json:"name"`
	Description Text    `json:"description"`
	Location    Text    `json:"location"`
	Client      Text    `json:"client"`
	Year        int     `json:"year" db:"year"`
	Value       float64 `json:"value,omitempty" db:"value"`
	Sector      string  `json:"sector,omitempty" db:"sector"`
	Status      string  `json:"status" db:"status"`
	IsFeatured  bool    `json:"is_featured" db:"is_featured"`
	SortOrder   int     `json:"sort_order" db:"sort_order"`
	Created     int64   `json:"created" db:"created"`
	Updated     int64   `json:"updated" db:"updated"`
}

// ProjectUpdate is a partial update: nil fields are left untouched.
type ProjectUpdate struct {
	Slug        *string  `json:"slug,omitempty"`
	Name        *Text    `json:"name,omitempty"`
	Description *Text    `json:"description,omitempty"`
	Location    *Text    `json:"location,omitempty"`
	Client      *Text    `json:"client,omitempty"`
	Year        *int     `json:"year,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Sector      *string  `json:"sector,omitempty"`
	Status      *string  `json:"status,omitempty"`
	IsFeatured  *bool    `json:"is_featured,omitempty"`
	SortOrder   *int     `json:"sort_order,omitempty"`
}

type ProjectStats struct {
	TotalProjects     int            `json:"total_projects"`
	FeaturedProjects  int            `json:"featured_projects"`
	CompletedProjects int            `json:"completed_projects"`
	OngoingProjects   int            `json:"ongoing_projects"`
	BySector          map[string]int `json:"by_sector"`
	ByYear            map[int]int    `json:"by_year"`
}

type Career struct {
	ID                int64  `json:"id" db:"id"`
	JobCode           string `json:"job_code" db:"job_code"`
	Title             Text   `json:"title"`
	Department        Text   `json:"department"`
	Location          Text   `json:"location"`
	Description       Text   `json:"description"`
	Requirements      Text   `json:"requirements"`
	Responsibilities  Text   `json:"responsibilities"`
	Benefits          Text   `json:"benefits"`
	EmploymentType    string `json:"employment_type,omitempty" db:"employment_type"`
	ExperienceLevel   string `json:"experience_level,omitempty" db:"experience_level"`
	ClosingDate       *int64 `json:"closing_date,omitempty" db:"closing_date"`
	IsUrgent          bool   `json:"is_urgent" db:"is_urgent"`
	IsActive          bool   `json:"is_active" db:"is_active"`
	ApplicationsCount int    `json:"applications_count" db:"applications_count"`
	Created           int64  `json:"created" db:"created"`
	Updated           int64  `json:"updated" db:"updated"`
}

type CareerUpdate struct {
	JobCode          *string `json:"job_code,omitempty"`
	Title            *Text   `json:"title,omitempty"`
	Department       *Text   `json:"department,omitempty"`
	Location         *Text   `json:"location,omitempty"`
	Description      *Text   `json:"description,omitempty"`
	Requirements     *Text   `json:"requirements,omitempty"`
	Responsibilities *Text   `json:"responsibilities,omitempty"`
	Benefits         *Text   `json:"benefits,omitempty"`
	EmploymentType   *string `json:"employment_type,omitempty"`
	ExperienceLevel  *string `json:"experience_level,omitempty"`
	ClosingDate      *int64  `json:"closing_date,omitempty"`
	IsUrgent         *bool   `json:"is_urgent,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

type CareerStats struct {
	TotalCareers         int            `json:"total_careers"`
	ActiveCareers        int            `json:"active_careers"`
	TotalApplications    int            `json:"total_applications"`
	ApplicationsByStatus map[string]int `json:"applications_by_status"`
}

// Application statuses. Submissions always start at pending regardless of
// what the caller supplies.
const (
	ApplicationPending     = "pending"
	ApplicationShortlisted = "shortlisted"
	ApplicationInterviewed = "interviewed"
	ApplicationAccepted    = "accepted"
	ApplicationRejected    = "rejected"
)

type JobApplication struct {
	ID                int64   `json:"id" db:"id"`
	CareerID          int64   `json:"career_id" db:"career_id" validate:"required"`
	ApplicationNumber string  `json:"application_number" db:"application_number"`
	Name              string  `json:"name" db:"name" validate:"required"`
	Email             string  `json:"email" db:"email" validate:"required,email"`
	Phone             string  `json:"phone,omitempty" db:"phone"`
	CoverLetter       string  `json:"cover_letter,omitempty" db:"cover_letter"`
	CVURL             string  `json:"cv_url,omitempty" db:"cv_url"`
	LinkedInURL       string  `json:"linkedin_url,omitempty" db:"linkedin_url"`
	YearsExperience   *int    `json:"years_experience,omitempty" db:"years_experience"`
	ExpectedSalary    *int64  `json:"expected_salary,omitempty" db:"expected_salary"`
	Status            string  `json:"status" db:"status"`
	Notes             *string `json:"notes,omitempty" db:"notes"`
	Created           int64   `json:"created" db:"created"`
	Updated           int64   `json:"updated" db:"updated"`

	// Joined career columns for admin listings; empty outside those reads.
	CareerTitle      Text `json:"career_title,omitzero"`
	CareerDepartment Text `json:"career_department,omitzero"`
}

// Inquiry statuses.
const (
	InquiryPending    = "pending"
	InquiryInProgress = "in-progress"
	InquiryResponded  = "responded"
	InquiryClosed     = "closed"
)

type Inquiry struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name" validate:"required"`
	Email       string  `json:"email" db:"email" validate:"required,email"`
	Phone       string  `json:"phone,omitempty" db:"phone"`
	Company     string  `json:"company,omitempty" db:"company"`
	Subject     string  `json:"subject,omitempty" db:"subject"`
	InquiryType string  `json:"inquiry_type,omitempty" db:"inquiry_type"`
	Message     string  `json:"message" db:"message" validate:"required"`
	Status      string  `json:"status" db:"status"`
	Response    *string `json:"response,omitempty" db:"response"`
	RespondedAt *int64  `json:"responded_at,omitempty" db:"responded_at"`
	Created     int64   `json:"created" db:"created"`
	Updated     int64   `json:"updated" db:"updated"`
}

type InquiryStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

type Sector struct {
	ID          int64  `json:"id" db:"id"`
	Slug        string `json:"slug" db:"slug"`
	Name        Text   `json:"name"`
	Description Text   `json:"description"`
	Icon        string `json:"icon,omitempty" db:"icon"`
	SortOrder   int    `json:"sort_order" db:"sort_order"`
	IsActive    bool   `json:"is_active" db:"is_active"`
	Created     int64  `json:"created" db:"created"`
	Updated     int64  `json:"updated" db:"updated"`

	// Derived at read time by ListWithProjectCount; never stored.
	ProjectCount int `json:"project_count,omitempty"`
}

type SectorUpdate struct {
	Slug        *string `json:"slug,omitempty"`
	Name        *Text   `json:"name,omitempty"`
	Description *Text   `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type Service struct {
	ID          int64  `json:"id" db:"id"`
	Slug        string `json:"slug" db:"slug"`
	Name        Text   `json:"name"`
	Description Text   `json:"description"`
	Icon        string `json:"icon,omitempty" db:"icon"`
	SortOrder   int    `json:"sort_order" db:"sort_order"`
	IsActive    bool   `json:"is_active" db:"is_active"`
	Created     int64  `json:"created" db:"created"`
	Updated     int64  `json:"updated" db:"updated"`

	ProjectCount int `json:"project_count,omitempty"`
}

type ServiceUpdate struct {
	Slug        *string `json:"slug,omitempty"`
	Name        *Text   `json:"name,omitempty"`
	Description *Text   `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type News struct {
	ID          int64    `json:"id" db:"id"`
	Slug        string   `json:"slug" db:"slug"`
	Title       Text     `json:"title"`
	Excerpt     Text     `json:"excerpt"`
	Content     Text     `json:"content"`
	Author      string   `json:"author,omitempty" db:"author"`
	Category    string   `json:"category,omitempty" db:"category"`
	ImageURL    string   `json:"image_url,omitempty" db:"image_url"`
	Tags        []string `json:"tags,omitempty"`
	IsPublished bool     `json:"is_published" db:"is_published"`
	// PublishedAt is set when the article first goes live; unpublished
	// drafts have none.
	PublishedAt *int64 `json:"published_at,omitempty" db:"published_at"`
	Views       int    `json:"views" db:"views"`
	Created     int64  `json:"created" db:"created"`
	Updated     int64  `json:"updated" db:"updated"`
}

type NewsUpdate struct {
	Slug        *string   `json:"slug,omitempty"`
	Title       *Text     `json:"title,omitempty"`
	Excerpt     *Text     `json:"excerpt,omitempty"`
	Content     *Text     `json:"content,omitempty"`
	Author      *string   `json:"author,omitempty"`
	Category    *string   `json:"category,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	IsPublished *bool     `json:"is_published,omitempty"`
	PublishedAt *int64    `json:"published_at,omitempty"`
	Views       *int      `json:"views,omitempty"`
}

type Admin struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name" validate:"required"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Updated      int64  `json:"updated" db:"updated"`
}
