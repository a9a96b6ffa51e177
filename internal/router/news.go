package router

import (
	"net/http"
	"net/url"

	"github.com/DjordjeVuckovic/news-minter/internal/apperr"
	"github.com/DjordjeVuckovic/news-minter/internal/dto"
	"github.com/DjordjeVuckovic/news-minter/internal/ingest"
	"github.com/DjordjeVuckovic/news-minter/internal/storage"
	"github.com/DjordjeVuckovic/news-minter/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NewsRouter struct {
	e        *echo.Echo
	store    storage.Store
	pipeline *ingest.Pipeline
}

func NewNewsRouter(e *echo.Echo, store storage.Store, pipeline *ingest.Pipeline) *NewsRouter {
	return &NewsRouter{
		e:        e,
		store:    store,
		pipeline: pipeline,
	}
}

func (r *NewsRouter) Bind() {
	g := r.e.Group("/news")
	g.POST("/submit", r.submitHandler)
	g.GET("", r.listHandler)
	g.GET("/all", r.allHandler)
	g.GET("/constellation/:dagAddress", r.constellationHandler)
	g.GET("/:id", r.getHandler)
}

// submitHandler godoc
// @Summary Submit a news article URL for ingestion
// @Accept json
// @Produce json
// @Param submission body dto.SubmitRequest true "Article URL and constellation address"
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} map[string]string "News is not crawlable"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /news/submit [post]
func (r *NewsRouter) submitHandler(c echo.Context) error {
	var req dto.SubmitRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	if err := validateSubmitURL(req.URL); err != nil {
		return err
	}
	if req.DagAddress == "" {
		return apperr.NewValidation("dagAddress is required")
	}

	result, err := r.pipeline.Submit(c.Request().Context(), req.URL, req.DagAddress)
	if err != nil {
		return err
	}

	if result.AlreadyExists {
		return c.JSON(http.StatusOK, dto.SubmitResponse{
			Message: "Article already exists",
			ID:      result.ID,
		})
	}

	return c.JSON(http.StatusOK, dto.SubmitResponse{
		Message: "News article successfully crawled and stored",
		ID:      result.ID,
	})
}

// listHandler godoc
// @Summary List stored articles with page arithmetic
// @Produce json
// @Param skip query int false "Records to skip" minimum(0)
// @Param limit query int false "Page size" minimum(1) maximum(100)
// @Success 200 {object} pagination.OffsetResult[dto.Article]
// @Router /news [get]
func (r *NewsRouter) listHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := c.Bind(&page); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	page.Normalize(pagination.ListDefaultLimit, pagination.ListMaxLimit)

	articles, total, err := r.store.List(c.Request().Context(), page.Skip, page.Limit)
	if err != nil {
		return err
	}

	result := pagination.NewOffsetResult(dto.FromArticles(articles), total, page.Skip, page.Limit)
	return c.JSON(http.StatusOK, result)
}

// allHandler godoc
// @Summary List stored articles in bulk
// @Produce json
// @Param skip query int false "Records to skip" minimum(0)
// @Param limit query int false "Page size" minimum(1) maximum(1000)
// @Success 200 {array} dto.Article
// @Failure 404 {object} map[string]string "No articles found"
// @Router /news/all [get]
func (r *NewsRouter) allHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := c.Bind(&page); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	page.Normalize(pagination.DumpDefaultLimit, pagination.DumpMaxLimit)

	articles, _, err := r.store.List(c.Request().Context(), page.Skip, page.Limit)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		return apperr.NewNotFound("No articles found")
	}

	return c.JSON(http.StatusOK, dto.FromArticles(articles))
}

// constellationHandler godoc
// @Summary List articles filed under a constellation address
// @Produce json
// @Param dagAddress path string true "Constellation address"
// @Param skip query int false "Records to skip" minimum(0)
// @Param limit query int false "Page size" minimum(1) maximum(100)
// @Success 200 {array} dto.Article
// @Failure 404 {object} map[string]string "No articles found for this constellation"
// @Router /news/constellation/{dagAddress} [get]
func (r *NewsRouter) constellationHandler(c echo.Context) error {
	dagAddress := c.Param("dagAddress")

	var page pagination.OffsetRequest
	if err := c.Bind(&page); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	page.Normalize(pagination.ListDefaultLimit, pagination.ListMaxLimit)

	articles, _, err := r.store.ListByAddress(c.Request().Context(), dagAddress, page.Skip, page.Limit)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		return apperr.NewNotFound("No articles found for this constellation")
	}

	return c.JSON(http.StatusOK, dto.FromArticles(articles))
}

// getHandler godoc
// @Summary Get a single article by id
// @Produce json
// @Param id path string true "Article id"
// @Success 200 {object} dto.Article
// @Failure 404 {object} map[string]string "Article not found"
// @Router /news/{id} [get]
func (r *NewsRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Unknown identifiers are a not-found outcome, not a client error.
		return apperr.NewNotFound("Article not found")
	}

	article, err := r.store.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromArticle(*article))
}

func validateSubmitURL(raw string) error {
	if raw == "" {
		return apperr.NewValidation("url is required")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return apperr.NewValidationWrap("invalid url", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return apperr.NewValidation("url scheme must be http or https")
	}
	if u.Host == "" {
		return apperr.NewValidation("url host is required")
	}
	return nil
}
