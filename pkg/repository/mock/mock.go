// Package mock provides a simple in-memory Store for tests. Setting Err
// makes every method fail with it; Calls counts invocations per method.
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/awtad/website/internal/models"
	"github.com/awtad/website/pkg/repository"
)

type Store struct {
	mu sync.Mutex

	// Err, when set, is returned by every method.
	Err error

	Projects     []models.Project
	Careers      []models.Career
	Applications []models.JobApplication
	Inquiries    []models.Inquiry
	Sectors      []models.Sector
	Services     []models.Service
	News         []models.News
	Admins       []models.Admin

	Calls map[string]int

	nextID int64
}

var _ repository.ProjectRepo = (*Store)(nil)
var _ repository.CareerRepo = (*Store)(nil)
var _ repository.ApplicationRepo = (*Store)(nil)
var _ repository.InquiryRepo = (*Store)(nil)
var _ repository.SectorRepo = (*Store)(nil)
var _ repository.ServiceRepo = (*Store)(nil)
var _ repository.NewsRepo = (*Store)(nil)
var _ repository.AdminRepo = (*Store)(nil)

func NewStore() *Store {
	return &Store{Calls: map[string]int{}}
}

// call records the invocation and reports the injected error, if any.
func (s *Store) call(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls[name]++
	return s.Err
}

func (s *Store) id() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

// CallCount returns how many times the named method ran.
func (s *Store) CallCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls[name]
}

func (s *Store) ListProjects(ctx context.Context, f repository.ProjectFilter, limit, offset int) ([]models.Project, error) {
	if err := s.call("ListProjects"); err != nil {
		return nil, err
	}
	out := append([]models.Project(nil), s.Projects...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	if err := s.call("GetProjectByID"); err != nil {
		return nil, err
	}
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i], nil
		}
	}
	return nil, nil
}

func (s *Store) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	if err := s.call("GetProjectBySlug"); err != nil {
		return nil, err
	}
	for i := range s.Projects {
		if s.Projects[i].Slug == slug {
			return &s.Projects[i], nil
		}
	}
	return nil, nil
}

func (s *Store) FeaturedProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if err := s.call("FeaturedProjects"); err != nil {
		return nil, err
	}
	var out []models.Project
	for _, p := range s.Projects {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) RecentProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if err := s.call("RecentProjects"); err != nil {
		return nil, err
	}
	return append([]models.Project(nil), s.Projects...), nil
}

func (s *Store) ProjectsBySector(ctx context.Context, sector string, limit int) ([]models.Project, error) {
	if err := s.call("ProjectsBySector"); err != nil {
		return nil, err
	}
	var out []models.Project
	for _, p := range s.Projects {
		if p.Sector == sector {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) ProjectYears(ctx context.Context) ([]int, error) {
	if err := s.call("ProjectYears"); err != nil {
		return nil, err
	}
	seen := map[int]bool{}
	var out []int
	for _, p := range s.Projects {
		if p.Year != 0 && !seen[p.Year] {
			seen[p.Year] = true
			out = append(out, p.Year)
		}
	}
	return out, nil
}

func (s *Store) ProjectSectorTags(ctx context.Context) ([]string, error) {
	if err := s.call("ProjectSectorTags"); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out []string
	for _, p := range s.Projects {
		if p.Sector != "" && !seen[p.Sector] {
			seen[p.Sector] = true
			out = append(out, p.Sector)
		}
	}
	return out, nil
}

func (s *Store) ProjectStats(ctx context.Context) (*models.ProjectStats, error) {
	if err := s.call("ProjectStats"); err != nil {
		return nil, err
	}
	return &models.ProjectStats{TotalProjects: len(s.Projects), BySector: map[string]int{}, ByYear: map[int]int{}}, nil
}

func (s *Store) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	if err := s.call("CreateProject"); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("project is nil")
	}
	p.ID = s.id()
	s.Projects = append(s.Projects, *p)
	return p, nil
}

func (s *Store) UpdateProject(ctx context.Context, id int64, upd models.ProjectUpdate) (*models.Project, error) {
	if err := s.call("UpdateProject"); err != nil {
		return nil, err
	}
	return s.GetProjectByID(ctx, id)
}

func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	return s.call("DeleteProject")
}

func (s *Store) ListCareers(ctx context.Context, f repository.CareerFilter) ([]models.Career, error) {
	if err := s.call("ListCareers"); err != nil {
		return nil, err
	}
	var out []models.Career
	for _, c := range s.Careers {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) AllCareers(ctx context.Context) ([]models.Career, error) {
	if err := s.call("AllCareers"); err != nil {
		return nil, err
	}
	return append([]models.Career(nil), s.Careers...), nil
}

func (s *Store) GetCareerByCode(ctx context.Context, jobCode string) (*models.Career, error) {
	if err := s.call("GetCareerByCode"); err != nil {
		return nil, err
	}
	for i := range s.Careers {
		if s.Careers[i].JobCode == jobCode && s.Careers[i].IsActive {
			return &s.Careers[i], nil
		}
	}
	return nil, nil
}

func (s *Store) GetCareerByID(ctx context.Context, id int64) (*models.Career, error) {
	if err := s.call("GetCareerByID"); err != nil {
		return nil, err
	}
	for i := range s.Careers {
		if s.Careers[i].ID == id {
			return &s.Careers[i], nil
		}
	}
	return nil, nil
}

func (s *Store) UrgentCareers(ctx context.Context, limit int) ([]models.Career, error) {
	if err := s.call("UrgentCareers"); err != nil {
		return nil, err
	}
	var out []models.Career
	for _, c := range s.Careers {
		if c.IsActive && c.IsUrgent {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) CareerStats(ctx context.Context) (*models.CareerStats, error) {
	if err := s.call("CareerStats"); err != nil {
		return nil, err
	}
	return &models.CareerStats{TotalCareers: len(s.Careers), ApplicationsByStatus: map[string]int{}}, nil
}

func (s *Store) CreateCareer(ctx context.Context, c *models.Career) (*models.Career, error) {
	if err := s.call("CreateCareer"); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("career is nil")
	}
	c.ID = s.id()
	c.ApplicationsCount = 0
	s.Careers = append(s.Careers, *c)
	return c, nil
}

func (s *Store) UpdateCareer(ctx context.Context, id int64, upd models.CareerUpdate) (*models.Career, error) {
	if err := s.call("UpdateCareer"); err != nil {
		return nil, err
	}
	for i := range s.Careers {
		if s.Careers[i].ID == id {
			return &s.Careers[i], nil
		}
	}
	return nil, nil
}

func (s *Store) DeleteCareer(ctx context.Context, id int64) error {
	return s.call("DeleteCareer")
}

func (s *Store) SubmitApplication(ctx context.Context, a *models.JobApplication) (*models.JobApplication, error) {
	if err := s.call("SubmitApplication"); err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("application is nil")
	}
	a.ID = s.id()
	a.Status = models.ApplicationPending
	s.Applications = append(s.Applications, *a)
	return a, nil
}

func (s *Store) ListApplications(ctx context.Context, f repository.ApplicationFilter) ([]models.JobApplication, error) {
	if err := s.call("ListApplications"); err != nil {
		return nil, err
	}
	return append([]models.JobApplication(nil), s.Applications...), nil
}

func (s *Store) GetApplicationByID(ctx context.Context, id int64) (*models.JobApplication, error) {
	if err := s.call("GetApplicationByID"); err != nil {
		return nil, err
	}
	for i := range s.Applications {
		if s.Applications[i].ID == id {
			return &s.Applications[i], nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateApplicationStatus(ctx context.Context, id int64, status string, notes *string) (*models.JobApplication, error) {
	if err := s.call("UpdateApplicationStatus"); err != nil {
		return nil, err
	}
	for i := range s.Applications {
		if s.Applications[i].ID == id {
			s.Applications[i].Status = status
			if notes != nil {
				s.Applications[i].Notes = notes
			}
			return &s.Applications[i], nil
		}
	}
	return nil, nil
}

func (s *Store) SubmitInquiry(ctx context.Context, in *models.Inquiry) (*models.Inquiry, error) {
	if err := s.call("SubmitInquiry"); err != nil {
		return nil, err
	}
	if in == nil {
		return nil, fmt.Errorf("inquiry is nil")
	}
	in.ID = s.id()
	in.Status = models.InquiryPending
	s.Inquiries = append(s.Inquiries, *in)
	return in, nil
}

func (s *Store) ListInquiries(ctx context.Context, status string) ([]models.Inquiry, error) {
	if err := s.call("ListInquiries"); err != nil {
		return nil, err
	}
	var out []models.Inquiry
	for _, in := range s.Inquiries {
		if status == "" || in.Status == status {
			out = append(out, in)
		}
	}
	return out, nil
}

func (s *Store) GetInquiryByID(ctx context.Context, id int64) (*models.Inquiry, error) {
	if err := s.call("GetInquiryByID"); err != nil {
		return nil, err
	}
	for i := range s.Inquiries {
		if s.Inquiries[i].ID == id {
			return &s.Inquiries[i], nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateInquiryStatus(ctx context.Context, id int64, status string, response *string) (*models.Inquiry, error) {
	if err := s.call("UpdateInquiryStatus"); err != nil {
		return nil, err
	}
	for i := range s.Inquiries {
		if s.Inquiries[i].ID == id {
			s.Inquiries[i].Status = status
			if response != nil {
				s.Inquiries[i].Response = response
			}
			return &s.Inquiries[i], nil
		}
	}
	return nil, nil
}

func (s *Store) DeleteInquiry(ctx context.Context, id int64) error {
	return s.call("DeleteInquiry")
}

func (s *Store) InquiryStats(ctx context.Context) (*models.InquiryStats, error) {
	if err := s.call("InquiryStats"); err != nil {
		return nil, err
	}
	return &models.InquiryStats{Total: len(s.Inquiries), ByStatus: map[string]int{}}, nil
}

func (s *Store) ListSectors(ctx context.Context) ([]models.Sector, error) {
	if err := s.call("ListSectors"); err != nil {
		return nil, err
	}
	return append([]models.Sector(nil), s.Sectors...), nil
}

func (s *Store) GetSectorBySlug(ctx context.Context, slug string) (*models.Sector, error) {
	if err := s.call("GetSectorBySlug"); err != nil {
		return nil, err
	}
	for i := range s.Sectors {
		if s.Sectors[i].Slug == slug {
			return &s.Sectors[i], nil
		}
	}
	return nil, nil
}

func (s *Store) SectorsWithProjectCount(ctx context.Context) ([]models.Sector, error) {
	if err := s.call("SectorsWithProjectCount"); err != nil {
		return nil, err
	}
	return append([]models.Sector(nil), s.Sectors...), nil
}

func (s *Store) CreateSector(ctx context.Context, sec *models.Sector) (*models.Sector, error) {
	if err := s.call("CreateSector"); err != nil {
		return nil, err
	}
	if sec == nil {
		return nil, fmt.Errorf("sector is nil")
	}
	sec.ID = s.id()
	s.Sectors = append(s.Sectors, *sec)
	return sec, nil
}

func (s *Store) UpdateSector(ctx context.Context, id int64, upd models.SectorUpdate) (*models.Sector, error) {
	if err := s.call("UpdateSector"); err != nil {
		return nil, err
	}
	for i := range s.Sectors {
		if s.Sectors[i].ID == id {
			return &s.Sectors[i], nil
		}
	}
	return nil, nil
}

func (s *Store) DeleteSector(ctx context.Context, id int64) error {
	return s.call("DeleteSector")
}

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	if err := s.call("ListServices"); err != nil {
		return nil, err
	}
	return append([]models.Service(nil), s.Services...), nil
}

func (s *Store) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	if err := s.call("GetServiceBySlug"); err != nil {
		return nil, err
	}
	for i := range s.Services {
		if s.Services[i].Slug == slug {
			return &s.Services[i], nil
		}
	}
	return nil, nil
}

func (s *Store) ServicesWithProjectCount(ctx context.Context) ([]models.Service, error) {
	if err := s.call("ServicesWithProjectCount"); err != nil {
		return nil, err
	}
	return append([]models.Service(nil), s.Services...), nil
}

func (s *Store) CreateService(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if err := s.call("CreateService"); err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service is nil")
	}
	svc.ID = s.id()
	s.Services = append(s.Services, *svc)
	return svc, nil
}

func (s *Store) UpdateService(ctx context.Context, id int64, upd models.ServiceUpdate) (*models.Service, error) {
	if err := s.call("UpdateService"); err != nil {
		return nil, err
	}
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i], nil
		}
	}
	return nil, nil
}

func (s *Store) DeleteService(ctx context.Context, id int64) error {
	return s.call("DeleteService")
}

func (s *Store) ListNews(ctx context.Context, f repository.NewsFilter) ([]models.News, error) {
	if err := s.call("ListNews"); err != nil {
		return nil, err
	}
	var out []models.News
	for _, n := range s.News {
		if !n.IsPublished {
			continue
		}
		if f.Category != "" && n.Category != f.Category {
			continue
		}
		out = append(out, n)
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *Store) GetNewsBySlug(ctx context.Context, slug string) (*models.News, error) {
	if err := s.call("GetNewsBySlug"); err != nil {
		return nil, err
	}
	for i := range s.News {
		if s.News[i].Slug == slug && s.News[i].IsPublished {
			return &s.News[i], nil
		}
	}
	return nil, nil
}

func (s *Store) AllNews(ctx context.Context) ([]models.News, error) {
	if err := s.call("AllNews"); err != nil {
		return nil, err
	}
	return append([]models.News(nil), s.News...), nil
}

func (s *Store) CreateNews(ctx context.Context, n *models.News) (*models.News, error) {
	if err := s.call("CreateNews"); err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("news is nil")
	}
	n.ID = s.id()
	s.News = append(s.News, *n)
	return n, nil
}

func (s *Store) UpdateNews(ctx context.Context, id int64, upd models.NewsUpdate) (*models.News, error) {
	if err := s.call("UpdateNews"); err != nil {
		return nil, err
	}
	for i := range s.News {
		if s.News[i].ID == id {
			return &s.News[i], nil
		}
	}
	return nil, nil
}

func (s *Store) DeleteNews(ctx context.Context, id int64) error {
	return s.call("DeleteNews")
}

func (s *Store) CreateAdmin(ctx context.Context, a *models.Admin) (int64, error) {
	if err := s.call("CreateAdmin"); err != nil {
		return 0, err
	}
	if a == nil {
		return 0, fmt.Errorf("admin is nil")
	}
	a.ID = s.id()
	s.Admins = append(s.Admins, *a)
	return a.ID, nil
}

func (s *Store) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if err := s.call("GetAdminByEmail"); err != nil {
		return nil, err
	}
	for i := range s.Admins {
		if s.Admins[i].Email == email {
			return &s.Admins[i], nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateAdminPassword(ctx context.Context, id int64, passwordHash string) error {
	if err := s.call("UpdateAdminPassword"); err != nil {
		return err
	}
	for i := range s.Admins {
		if s.Admins[i].ID == id {
			s.Admins[i].PasswordHash = passwordHash
		}
	}
	return nil
}

func (s *Store) CountAdmins(ctx context.Context) (int64, error) {
	if err := s.call("CountAdmins"); err != nil {
		return 0, err
	}
	return int64(len(s.Admins)), nil
}
