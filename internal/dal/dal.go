package dal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/awtad/website/internal/models"
	"github.com/awtad/website/pkg/repository"
)

// Store is the backend surface the facade reads from.
type Store interface {
	repository.ProjectRepo
	repository.CareerRepo
	repository.SectorRepo
	repository.ServiceRepo
	repository.NewsRepo
}

// DAL is the read facade for the public site. It implements two policies
// exactly once instead of per call site:
//
//   - per-request memoization, keyed by (operation, arguments), when the
//     context carries a cache (see WithRequestCache);
//   - swallow-on-read: backend errors are logged and converted to empty
//     results, so the public pages degrade to "nothing here" instead of
//     failing.
//
// Writes never go through the DAL; handlers call the repositories directly
// and propagate errors.
type DAL struct {
	store  Store
	logger *slog.Logger
}

func New(store Store, logger *slog.Logger) *DAL {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &DAL{store: store, logger: logger}
}

// read runs fn through the request cache, swallowing errors.
func read[T any](d *DAL, ctx context.Context, key string, fn func(context.Context) (T, error)) T {
	if c := cacheFrom(ctx); c != nil {
		if v, ok := c.get(key); ok {
			if t, ok := v.(T); ok {
				return t
			}
		}
	}

	v, err := fn(ctx)
	if err != nil {
		d.logger.Error("read failed, returning empty result", "key", key, "err", err)
		var zero T
		return zero
	}

	if c := cacheFrom(ctx); c != nil {
		c.set(key, v)
	}
	return v
}

func intp(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func boolp(p *bool) string {
	if p == nil {
		return ""
	}
	return strconv.FormatBool(*p)
}

func (d *DAL) Projects(ctx context.Context, f repository.ProjectFilter, limit, offset int) []models.Project {
	// free-text fields are quoted so an embedded separator cannot make two
	// distinct filters share a key
	key := fmt.Sprintf("projects:%s:%q:%q:%s:%q:%d:%d", intp(f.Year), f.Sector, f.Status, boolp(f.Featured), f.Search, limit, offset)
	return read(d, ctx, key, func(ctx context.Context) ([]models.Project, error) {
		return d.store.ListProjects(ctx, f, limit, offset)
	})
}

func (d *DAL) ProjectBySlug(ctx context.Context, slug string) *models.Project {
	return read(d, ctx, "project:"+slug, func(ctx context.Context) (*models.Project, error) {
		return d.store.GetProjectBySlug(ctx, slug)
	})
}

func (d *DAL) FeaturedProjects(ctx context.Context, limit int) []models.Project {
	return read(d, ctx, "projects:featured:"+strconv.Itoa(limit), func(ctx context.Context) ([]models.Project, error) {
		return d.store.FeaturedProjects(ctx, limit)
	})
}

func (d *DAL) ProjectYears(ctx context.Context) []int {
	return read(d, ctx, "projects:years", func(ctx context.Context) ([]int, error) {
		return d.store.ProjectYears(ctx)
	})
}

func (d *DAL) ProjectSectorTags(ctx context.Context) []string {
	return read(d, ctx, "projects:sectors", func(ctx context.Context) ([]string, error) {
		return d.store.ProjectSectorTags(ctx)
	})
}

func (d *DAL) Careers(ctx context.Context, f repository.CareerFilter) []models.Career {
	key := fmt.Sprintf("careers:%q:%q:%q:%q", f.Department, f.Location, f.EmploymentType, f.ExperienceLevel)
	return read(d, ctx, key, func(ctx context.Context) ([]models.Career, error) {
		return d.store.ListCareers(ctx, f)
	})
}

func (d *DAL) CareerByCode(ctx context.Context, code string) *models.Career {
	return read(d, ctx, "career:"+code, func(ctx context.Context) (*models.Career, error) {
		return d.store.GetCareerByCode(ctx, code)
	})
}

func (d *DAL) UrgentCareers(ctx context.Context, limit int) []models.Career {
	return read(d, ctx, "careers:urgent:"+strconv.Itoa(limit), func(ctx context.Context) ([]models.Career, error) {
		return d.store.UrgentCareers(ctx, limit)
	})
}

func (d *DAL) Sectors(ctx context.Context) []models.Sector {
	return read(d, ctx, "sectors", func(ctx context.Context) ([]models.Sector, error) {
		return d.store.SectorsWithProjectCount(ctx)
	})
}

func (d *DAL) SectorBySlug(ctx context.Context, slug string) *models.Sector {
	return read(d, ctx, "sector:"+slug, func(ctx context.Context) (*models.Sector, error) {
		return d.store.GetSectorBySlug(ctx, slug)
	})
}

func (d *DAL) Services(ctx context.Context) []models.Service {
	return read(d, ctx, "services", func(ctx context.Context) ([]models.Service, error) {
		return d.store.ServicesWithProjectCount(ctx)
	})
}

func (d *DAL) ServiceBySlug(ctx context.Context, slug string) *models.Service {
	return read(d, ctx, "service:"+slug, func(ctx context.Context) (*models.Service, error) {
		return d.store.GetServiceBySlug(ctx, slug)
	})
}

func (d *DAL) News(ctx context.Context, f repository.NewsFilter) []models.News {
	key := fmt.Sprintf("news:%q:%q:%d", f.Category, f.Search, f.Limit)
	return read(d, ctx, key, func(ctx context.Context) ([]models.News, error) {
		return d.store.ListNews(ctx, f)
	})
}

func (d *DAL) NewsBySlug(ctx context.Context, slug string) *models.News {
	return read(d, ctx, "news:"+slug, func(ctx context.Context) (*models.News, error) {
		return d.store.GetNewsBySlug(ctx, slug)
	})
}

// SearchResult is the payload of the sitewide search.
type SearchResult struct {
	Projects []models.Project `json:"projects"`
	Careers  []models.Career  `json:"careers"`
}

// Search matches q against projects (delegated to the repository's search
// filter) and active careers (title, department and description, both
// languages, matched here since the career filter has no free-text field).
func (d *DAL) Search(ctx context.Context, q string) SearchResult {
	result := SearchResult{
		Projects: d.Projects(ctx, repository.ProjectFilter{Search: q}, 0, 0),
	}

	needle := strings.ToLower(q)
	for _, c := range d.Careers(ctx, repository.CareerFilter{}) {
		if careerMatches(c, needle) {
			result.Careers = append(result.Careers, c)
		}
	}
	return result
}

func careerMatches(c models.Career, needle string) bool {
	for _, t := range []models.Text{c.Title, c.Department, c.Description} {
		if strings.Contains(strings.ToLower(t.EN), needle) || strings.Contains(strings.ToLower(t.AR), needle) {
			return true
		}
	}
	return false
}
