package httpHandler

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio-server/usecases"
	"portfolio-server/ws"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	useCase *usecases.PortfolioUseCase
	mgr     *ws.Manager
}

func NewPortfolioHandler(useCase *usecases.PortfolioUseCase, mgr *ws.Manager) *PortfolioHandler {
	return &PortfolioHandler{useCase: useCase, mgr: mgr}
}

// Home handles GET /home
func (h *PortfolioHandler) Home(c *gin.Context) {
	session := CurrentSession(c)
	c.HTML(http.StatusOK, "home.html", gin.H{"username": session.Username})
}

// ShowAbout handles GET /about
func (h *PortfolioHandler) ShowAbout(c *gin.Context) {
	session := CurrentSession(c)
	c.HTML(http.StatusOK, "about.html", gin.H{"about": h.useCase.GetAboutMe(session.UserID)})
}

// SaveAbout handles POST /about
func (h *PortfolioHandler) SaveAbout(c *gin.Context) {
	session := CurrentSession(c)

	err := h.useCase.SaveAboutMe(session.UserID,
		c.PostForm("name"),
		c.PostForm("role"),
		c.PostForm("bio"),
		c.PostForm("skills"),
		c.PostForm("education"),
	)
	if err != nil {
		c.HTML(http.StatusOK, "about.html", gin.H{
			"about":  h.useCase.GetAboutMe(session.UserID),
			"result": "All fields are required",
		})
		return
	}

	h.mgr.NotifyRefresh(session.UserID, "about")
	c.Redirect(http.StatusFound, "/about")
}

// ShowProjects handles GET /projects
func (h *PortfolioHandler) ShowProjects(c *gin.Context) {
	session := CurrentSession(c)
	projects, err := h.useCase.ListProjects(session.UserID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load projects")
		return
	}
	c.HTML(http.StatusOK, "projects.html", gin.H{"projects": projects})
}

// CreateProject handles POST /projects
func (h *PortfolioHandler) CreateProject(c *gin.Context) {
	session := CurrentSession(c)

	err := h.useCase.CreateProject(session.UserID,
		c.PostForm("project_name"),
		c.PostForm("description"),
		c.PostForm("github"),
	)
	if err != nil {
		projects, _ := h.useCase.ListProjects(session.UserID)
		c.HTML(http.StatusOK, "projects.html", gin.H{
			"projects": projects,
			"result":   "All fields are required",
		})
		return
	}

	h.mgr.NotifyRefresh(session.UserID, "projects")
	c.Redirect(http.StatusFound, "/projects")
}

// ShowEditProject handles GET /edit_project/:id
func (h *PortfolioHandler) ShowEditProject(c *gin.Context) {
	session := CurrentSession(c)

	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/projects")
		return
	}

	project, err := h.useCase.GetOwnedProject(id, session.UserID)
	if err != nil {
		c.Redirect(http.StatusFound, "/projects")
		return
	}
	c.HTML(http.StatusOK, "edit_project.html", gin.H{"project": project})
}

// UpdateProject handles POST /edit_project/:id
func (h *PortfolioHandler) UpdateProject(c *gin.Context) {
	session := CurrentSession(c)

	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/projects")
		return
	}

	err := h.useCase.UpdateProject(id, session.UserID,
		c.PostForm("project_name"),
		c.PostForm("description"),
		c.PostForm("github"),
	)
	if err != nil {
		if errors.Is(err, usecases.ErrFieldsRequired) {
			project, _ := h.useCase.GetOwnedProject(id, session.UserID)
			c.HTML(http.StatusOK, "edit_project.html", gin.H{
				"project": project,
				"result":  "All fields are required",
			})
			return
		}
		// Nonexistent or someone else's project: no mutation, back to the list
		c.Redirect(http.StatusFound, "/projects")
		return
	}

	h.mgr.NotifyRefresh(session.UserID, "projects")
	c.Redirect(http.StatusFound, "/projects")
}

// DeleteProject handles GET /delete_project/:id
func (h *PortfolioHandler) DeleteProject(c *gin.Context) {
	session := CurrentSession(c)

	if id, ok := parseID(c); ok {
		if err := h.useCase.DeleteProject(id, session.UserID); err == nil {
			h.mgr.NotifyRefresh(session.UserID, "projects")
		}
	}
	c.Redirect(http.StatusFound, "/projects")
}

// ShowContact handles GET /contact
func (h *PortfolioHandler) ShowContact(c *gin.Context) {
	session := CurrentSession(c)
	c.HTML(http.StatusOK, "contact.html", gin.H{"contact": h.useCase.GetContact(session.UserID)})
}

// SaveContact handles POST /contact
func (h *PortfolioHandler) SaveContact(c *gin.Context) {
	session := CurrentSession(c)

	err := h.useCase.SaveContact(session.UserID,
		c.PostForm("email"),
		c.PostForm("phone"),
		c.PostForm("linkedin"),
		c.PostForm("github"),
	)
	if err != nil {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"contact": h.useCase.GetContact(session.UserID),
			"result":  "All fields are required",
		})
		return
	}

	h.mgr.NotifyRefresh(session.UserID, "contact")
	c.Redirect(http.StatusFound, "/contact")
}

// Preview handles GET /preview
func (h *PortfolioHandler) Preview(c *gin.Context) {
	session := CurrentSession(c)

	preview, err := h.useCase.GetPreview(session.UserID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load preview")
		return
	}
	c.HTML(http.StatusOK, "preview.html", gin.H{
		"about":    preview.About,
		"projects": preview.Projects,
		"contact":  preview.Contact,
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
