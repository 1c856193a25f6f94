package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rcliao/courtdocs/internal/archive"
	"github.com/rcliao/courtdocs/internal/export"
	"github.com/rcliao/courtdocs/internal/model"
	"github.com/rcliao/courtdocs/internal/query"
)

const maxUploadBytes = 50 << 20

type ingestRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

type chatRequest struct {
	Message string `json:"message"`
}

// upload handles POST /documents with multipart files or a JSON document.
func (s *Server) upload(c *gin.Context) {
	ctx := c.Request.Context()
	var results []archive.FileResult

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			s.fail(c, http.StatusBadRequest, "invalid multipart form", err)
			return
		}
		files := append(form.File["files"], form.File["file"]...)
		if len(files) == 0 {
			s.fail(c, http.StatusBadRequest, "no files uploaded", nil)
			return
		}
		for _, fh := range files {
			if fh.Size > maxUploadBytes {
				results = append(results, archive.FileResult{Path: fh.Filename, Err: "file too large"})
				continue
			}
			f, err := fh.Open()
			if err != nil {
				results = append(results, archive.FileResult{Path: fh.Filename, Err: err.Error()})
				continue
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				results = append(results, archive.FileResult{Path: fh.Filename, Err: err.Error()})
				continue
			}
			results = append(results, s.svc.IngestBytes(ctx, fh.Filename, data)...)
		}
	} else {
		var req ingestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.fail(c, http.StatusBadRequest, "invalid request body", err)
			return
		}
		if req.Filename == "" {
			req.Filename = "document.txt"
		}
		results = s.svc.IngestBytes(ctx, ensureTxt(req.Filename), []byte(req.Text))
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func ensureTxt(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".txt") {
		return name
	}
	return name + ".txt"
}

func (s *Server) getDocument(c *gin.Context) {
	doc, err := s.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.failLookup(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) deleteDocument(c *gin.Context) {
	id := c.Param("id")
	if err := s.svc.Delete(c.Request.Context(), id); err != nil {
		s.failLookup(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// criteriaFromQuery reads explicit filters from the query string.
func criteriaFromQuery(c *gin.Context) model.SearchCriteria {
	return model.SearchCriteria{
		Judge:        c.Query("judge"),
		Court:        c.Query("court"),
		CaseType:     c.Query("case_type"),
		District:     c.Query("district"),
		Year:         c.Query("year"),
		DecisionType: c.Query("decision_type"),
	}
}

// run answers q when present and the explicit filters otherwise.
func (s *Server) run(c *gin.Context) (*archive.SearchResult, error) {
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		return s.svc.Query(c.Request.Context(), q)
	}
	return s.svc.Search(c.Request.Context(), criteriaFromQuery(c))
}

func (s *Server) search(c *gin.Context) {
	res, err := s.run(c)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "search failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"criteria":  res.Criteria,
		"mode":      res.Mode,
		"count":     len(res.Documents),
		"documents": res.Documents,
		"hits":      res.Hits,
	})
}

func (s *Server) filters(c *gin.Context) {
	opts, err := s.svc.Filters(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "filters failed", err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.fail(c, http.StatusBadRequest, "message is required", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": s.svc.Chat(c.Request.Context(), req.Message)})
}

func (s *Server) stats(c *gin.Context) {
	st, err := s.svc.Stats(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "stats failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// export renders the search results, or every document when no q or
// filter is given.
func (s *Server) export(c *gin.Context) {
	ctx := c.Request.Context()
	format := c.DefaultQuery("format", export.FormatXLSX)

	var docs []model.Document
	crit := criteriaFromQuery(c)
	if c.Query("q") == "" && !crit.HasStructured() {
		all, err := s.svc.ExportAll(ctx)
		if err != nil {
			s.fail(c, http.StatusInternalServerError, "export failed", err)
			return
		}
		docs = all
	} else {
		res, err := s.run(c)
		if err != nil {
			s.fail(c, http.StatusInternalServerError, "export failed", err)
			return
		}
		docs = res.Documents
	}

	b, contentType, err := export.Render(format, docs)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			s.fail(c, http.StatusBadRequest, "invalid format", err)
			return
		}
		s.fail(c, http.StatusInternalServerError, "export failed", err)
		return
	}
	ext := export.FormatXLSX
	if strings.HasPrefix(contentType, "application/json") {
		ext = export.FormatJSON
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="courtdocs.%s"`, ext))
	c.Data(http.StatusOK, contentType, b)
}

func (s *Server) suggest(c *gin.Context) {
	q := c.Query("q")
	c.JSON(http.StatusOK, gin.H{
		"suggestions": query.Suggestions(q),
		"validation":  query.ValidateQuery(q),
		"translated":  query.TranslateLegalTerms(q),
	})
}
