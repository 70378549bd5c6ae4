package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-api/internal/domain"
	"user-api/internal/service"
)

// Handler wires HTTP routes to the user service.
type Handler struct {
	users  service.UserService
	logger *logrus.Logger
}

func NewHandler(users service.UserService, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		users:  users,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	// "/users/" is unmatched and gets the NoRoute 404, not a redirect
	router.RedirectTrailingSlash = false
	router.Use(requestIDMiddleware(), h.accessLogMiddleware(), corsMiddleware())

	router.GET("/", h.index)

	users := router.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.POST("/create", h.createUser)
		users.PUT("/update/:id", h.updateUser)
		users.DELETE("/delete/:id", h.deleteUser)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
}

// userRequest fields are pointers so that "required" rejects a missing or
// null field while still accepting an empty string.
type userRequest struct {
	Name     *string `json:"name" binding:"required"`
	Username *string `json:"username" binding:"required"`
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

func (r userRequest) fields() domain.UserFields {
	return domain.UserFields{
		Name:     *r.Name,
		Username: *r.Username,
		Email:    *r.Email,
		Password: *r.Password,
	}
}

func (h *Handler) index(c *gin.Context) {
	c.String(http.StatusOK, "API is running")
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "list users", err)
		return
	}

	resp := make([]UserListItem, len(users))
	for i := range users {
		resp[i] = toListItem(users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getUser(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "get user", err)
		return
	}
	c.JSON(http.StatusOK, toProfile(*user))
}

func (h *Handler) createUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, "create user", err)
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.fields())
	if err != nil {
		h.respondError(c, "create user", err)
		return
	}
	c.JSON(http.StatusOK, toMessage(*user, "User created successfully"))
}

func (h *Handler) updateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, "update user", err)
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), req.fields())
	if err != nil {
		h.respondError(c, "update user", err)
		return
	}
	c.JSON(http.StatusOK, toUpdated(*user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	user, err := h.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "delete user", err)
		return
	}
	c.JSON(http.StatusOK, toMessage(*user, "User deleted successfully"))
}
