package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"robohub/internal/handlers"
	"robohub/internal/models"
	"robohub/internal/repositories"
	"robohub/internal/services"
)

// setupApp builds a Fiber app over an in-memory SQLite database with a
// small seeded catalog and blog.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:handlers_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Robot{}, &models.BlogPost{}); err != nil {
		t.Fatalf("failed to auto-migrate database: %v", err)
	}

	robotRepo := repositories.NewGORMRobotRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)

	num := func(v float64) *float64 { return &v }
	robots := []struct {
		robot models.Robot
		specs models.RobotSpecifications
	}{
		{models.Robot{Slug: "abb-irb-6700", Name: "IRB 6700", Brand: "ABB", Type: "Articulated", PriceMin: num(10000000)}, models.RobotSpecifications{ReachM: num(2.7)}},
		{models.Robot{Slug: "fanuc-sr-6ia", Name: "SR-6iA", Brand: "FANUC", Type: "SCARA", PriceMin: num(1500000)}, models.RobotSpecifications{ReachM: num(0.65)}},
		{models.Robot{Slug: "epson-t6", Name: "T6", Brand: "Epson", Type: "SCARA", PriceMin: num(900000)}, models.RobotSpecifications{}},
	}
	for _, entry := range robots {
		robot := entry.robot
		if err := robot.SetSpecs(entry.specs); err != nil {
			t.Fatalf("failed to set specs: %v", err)
		}
		if err := robotRepo.Create(&robot); err != nil {
			t.Fatalf("failed to seed robot: %v", err)
		}
	}

	post := models.BlogPost{
		Slug:    "choosing-a-robot",
		Title:   "Choosing a Robot",
		Content: "# Choosing a Robot\n\n## Payload\n\nPayload matters.",
	}
	post.SetTags([]string{"Buying Guide"})
	if err := blogRepo.Create(&post); err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}
	other := models.BlogPost{
		Slug:    "scara-vs-articulated",
		Title:   "SCARA vs Articulated",
		Content: "# SCARA vs Articulated\n\nBody.",
	}
	other.SetTags([]string{"Buying Guide", "SCARA"})
	if err := blogRepo.Create(&other); err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewRobotHandler(services.NewCatalogService(robotRepo)).RegisterRoutes(apiV1)
	handlers.NewBlogHandler(services.NewBlogService(blogRepo)).RegisterRoutes(apiV1)
	return app
}

func getJSON(t *testing.T, app *fiber.App, url string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("decoding %s response %q: %v", url, body, err)
		}
	}
	return resp.StatusCode
}

func TestListRobots_FilteredAndSorted(t *testing.T) {
	app := setupApp(t)

	var page models.RobotPage
	status := getJSON(t, app, "/api/v1/robots?type=SCARA&min_price=1000000&sort_by=price_asc", &page)

	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, page.Total)
	if assert.Len(t, page.Data, 1) {
		assert.Equal(t, "SR-6iA", page.Data[0].Name)
	}
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, models.DefaultPerPage, page.PerPage)
}

func TestListRobots_ReachSortMissingLast(t *testing.T) {
	app := setupApp(t)

	var page models.RobotPage
	status := getJSON(t, app, "/api/v1/robots?sort_by=reach", &page)

	assert.Equal(t, http.StatusOK, status)
	if assert.Len(t, page.Data, 3) {
		assert.Equal(t, "IRB 6700", page.Data[0].Name)
		assert.Equal(t, "SR-6iA", page.Data[1].Name)
		assert.Equal(t, "T6", page.Data[2].Name)
	}
}

func TestListRobots_MalformedParamsFallBack(t *testing.T) {
	app := setupApp(t)

	var page models.RobotPage
	status := getJSON(t, app, "/api/v1/robots?page=0&per_page=500&min_price=abc", &page)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, models.MaxPerPage, page.PerPage)
	assert.EqualValues(t, 3, page.Total)
}

func TestListRobots_Pagination(t *testing.T) {
	app := setupApp(t)

	var page models.RobotPage
	status := getJSON(t, app, "/api/v1/robots?per_page=2&page=2", &page)

	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Data, 1)
}

func TestFilterOptions(t *testing.T) {
	app := setupApp(t)

	var opts models.FilterOptions
	status := getJSON(t, app, "/api/v1/robots/filters", &opts)

	assert.Equal(t, http.StatusOK, status)
	assert.ElementsMatch(t, []string{"Articulated", "SCARA"}, opts.Types)
	assert.ElementsMatch(t, []string{"ABB", "FANUC", "Epson"}, opts.Brands)
}

func TestGetRobotBySlug(t *testing.T) {
	app := setupApp(t)

	var robot models.Robot
	status := getJSON(t, app, "/api/v1/robots/abb-irb-6700", &robot)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "IRB 6700", robot.Name)

	var errResp map[string]string
	status = getJSON(t, app, "/api/v1/robots/no-such-robot", &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Robot not found", errResp["message"])
}

func TestGetRelatedRobots(t *testing.T) {
	app := setupApp(t)

	var resp struct {
		Data []models.Robot `json:"data"`
	}
	status := getJSON(t, app, "/api/v1/robots/fanuc-sr-6ia/related", &resp)

	assert.Equal(t, http.StatusOK, status)
	if assert.Len(t, resp.Data, 1) {
		assert.Equal(t, "T6", resp.Data[0].Name)
	}
}

func TestListBlogPosts(t *testing.T) {
	app := setupApp(t)

	var resp struct {
		Data []models.BlogPost `json:"data"`
	}
	status := getJSON(t, app, "/api/v1/blog?limit=5", &resp)

	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Data, 2)
}

func TestGetBlogPost_RenderedWithTOC(t *testing.T) {
	app := setupApp(t)

	var resp struct {
		Slug string `json:"slug"`
		HTML string `json:"html"`
		TOC  []struct {
			ID    string `json:"id"`
			Level int    `json:"level"`
		} `json:"toc"`
	}
	status := getJSON(t, app, "/api/v1/blog/choosing-a-robot", &resp)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "choosing-a-robot", resp.Slug)
	assert.Contains(t, resp.HTML, `<h2 id="payload">`)
	if assert.Len(t, resp.TOC, 1) {
		assert.Equal(t, "payload", resp.TOC[0].ID)
		assert.Equal(t, 2, resp.TOC[0].Level)
	}

	var errResp map[string]string
	status = getJSON(t, app, "/api/v1/blog/missing", &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Blog post not found", errResp["message"])
}

func TestGetRelatedBlogPosts(t *testing.T) {
	app := setupApp(t)

	var resp struct {
		Data []models.BlogPost `json:"data"`
	}
	status := getJSON(t, app, "/api/v1/blog/choosing-a-robot/related", &resp)

	assert.Equal(t, http.StatusOK, status)
	if assert.Len(t, resp.Data, 1) {
		assert.Equal(t, "scara-vs-articulated", resp.Data[0].Slug)
	}
}
