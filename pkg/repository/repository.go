package repository

import (
	"context"

	"github.com/awtad/website/internal/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Shared conventions: not-found is (nil, nil), never an error; write
// operations return the persisted row and propagate backend failures to the
// caller. Read-path error swallowing is NOT done here — that policy lives in
// internal/dal, once.

// ProjectFilter narrows ListProjects. Zero values mean "no constraint".
type ProjectFilter struct {
	Year     *int
	Sector   string
	Status   string
	Featured *bool
	// Search is a case-insensitive substring match OR-ed across name,
	// description and client in both languages.
	Search string
}

type ProjectRepo interface {
	// ListProjects returns projects ordered by year descending then
	// sort_order ascending. A non-positive limit means no cap; an offset
	// without a limit assumes a window of 10 rows.
	ListProjects(ctx context.Context, f ProjectFilter, limit, offset int) ([]models.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	FeaturedProjects(ctx context.Context, limit int) ([]models.Project, error)
	RecentProjects(ctx context.Context, limit int) ([]models.Project, error)
	ProjectsBySector(ctx context.Context, sector string, limit int) ([]models.Project, error)
	ProjectYears(ctx context.Context) ([]int, error)
	ProjectSectorTags(ctx context.Context) ([]string, error)
	ProjectStats(ctx context.Context) (*models.ProjectStats, error)

	CreateProject(ctx context.Context, p *models.Project) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, upd models.ProjectUpdate) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// CareerFilter narrows ListCareers. Department and Location are bilingual
// substring matches; the rest are exact.
type CareerFilter struct {
	Department      string
	Location        string
	EmploymentType  string
	ExperienceLevel string
}

type CareerRepo interface {
	// ListCareers returns active postings only, ordered by created
	// descending. This is the public view.
	ListCareers(ctx context.Context, f CareerFilter) ([]models.Career, error)
	// AllCareers includes inactive postings; admin view.
	AllCareers(ctx context.Context) ([]models.Career, error)
	GetCareerByCode(ctx context.Context, jobCode string) (*models.Career, error)
	// GetCareerByID has no is_active guard; admin reads and submission
	// validation use it.
	GetCareerByID(ctx context.Context, id int64) (*models.Career, error)
	UrgentCareers(ctx context.Context, limit int) ([]models.Career, error)
	CareerStats(ctx context.Context) (*models.CareerStats, error)

	CreateCareer(ctx context.Context, c *models.Career) (*models.Career, error)
	UpdateCareer(ctx context.Context, id int64, upd models.CareerUpdate) (*models.Career, error)
	DeleteCareer(ctx context.Context, id int64) error
}

type ApplicationFilter struct {
	CareerID int64
	Status   string
}

type ApplicationRepo interface {
	// SubmitApplication persists a public submission. The stored status is
	// always pending regardless of input, and the owning career's
	// applications_count is incremented.
	SubmitApplication(ctx context.Context, a *models.JobApplication) (*models.JobApplication, error)
	// ListApplications joins career title/department for display, ordered
	// by created descending.
	ListApplications(ctx context.Context, f ApplicationFilter) ([]models.JobApplication, error)
	GetApplicationByID(ctx context.Context, id int64) (*models.JobApplication, error)
	// UpdateApplicationStatus changes status and, when notes is non-nil,
	// the admin notes. Other fields are untouched.
	UpdateApplicationStatus(ctx context.Context, id int64, status string, notes *string) (*models.JobApplication, error)
}

type InquiryRepo interface {
	// SubmitInquiry persists a public inquiry with status forced to pending.
	SubmitInquiry(ctx context.Context, in *models.Inquiry) (*models.Inquiry, error)
	// ListInquiries returns inquiries ordered by created descending,
	// optionally filtered by exact status.
	ListInquiries(ctx context.Context, status string) ([]models.Inquiry, error)
	GetInquiryByID(ctx context.Context, id int64) (*models.Inquiry, error)
	// UpdateInquiryStatus changes status; a non-nil response sets the
	// response text and responded_at together in the same statement.
	UpdateInquiryStatus(ctx context.Context, id int64, status string, response *string) (*models.Inquiry, error)
	DeleteInquiry(ctx context.Context, id int64) error
	InquiryStats(ctx context.Context) (*models.InquiryStats, error)
}

type SectorRepo interface {
	// ListSectors returns active sectors ordered by sort_order ascending.
	ListSectors(ctx context.Context) ([]models.Sector, error)
	GetSectorBySlug(ctx context.Context, slug string) (*models.Sector, error)
	// SectorsWithProjectCount annotates each active sector with a count
	// derived from the project_sectors join table at read time.
	SectorsWithProjectCount(ctx context.Context) ([]models.Sector, error)

	CreateSector(ctx context.Context, s *models.Sector) (*models.Sector, error)
	UpdateSector(ctx context.Context, id int64, upd models.SectorUpdate) (*models.Sector, error)
	DeleteSector(ctx context.Context, id int64) error
}

type ServiceRepo interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error)
	ServicesWithProjectCount(ctx context.Context) ([]models.Service, error)

	CreateService(ctx context.Context, s *models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, id int64, upd models.ServiceUpdate) (*models.Service, error)
	DeleteService(ctx context.Context, id int64) error
}

// NewsFilter narrows ListNews. Search is a bilingual substring match across
// title, excerpt and content.
type NewsFilter struct {
	Category string
	Search   string
	Limit    int
}

type NewsRepo interface {
	// ListNews returns published articles only, newest published first.
	ListNews(ctx context.Context, f NewsFilter) ([]models.News, error)
	// GetNewsBySlug returns a published article; drafts are invisible
	// publicly.
	GetNewsBySlug(ctx context.Context, slug string) (*models.News, error)
	// AllNews includes drafts; admin view, ordered by created descending.
	AllNews(ctx context.Context) ([]models.News, error)

	// CreateNews stamps published_at when the article is created already
	// published; UpdateNews stamps it on the first transition to published.
	CreateNews(ctx context.Context, n *models.News) (*models.News, error)
	UpdateNews(ctx context.Context, id int64, upd models.NewsUpdate) (*models.News, error)
	DeleteNews(ctx context.Context, id int64) error
}

type AdminRepo interface {
	CreateAdmin(ctx context.Context, a *models.Admin) (int64, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdateAdminPassword(ctx context.Context, id int64, passwordHash string) error
	CountAdmins(ctx context.Context) (int64, error)
}
