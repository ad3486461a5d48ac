package handler

import (
	projectapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/project"
	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project and task API endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *projectapp.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *projectapp.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProject godoc
// @ID           createProject
//
//	@Summary		Create a project
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body		projectapp.ProjectRequest	true	"Project"
//	@Success		201		{object}	APIResponse[projectapp.ProjectResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req projectapp.ProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}
	p, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, p)
}

// GetProject godoc
// @ID           getProjectById
//
//	@Summary		Get project by ID
//	@Tags			projects
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"	format(uuid)
//	@Success		200	{object}	APIResponse[projectapp.ProjectResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := h.parseID(c, "project")
	if !ok {
		return
	}
	p, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// ListProjects godoc
// @ID           listProjects
//
//	@Summary		List projects
//	@Tags			projects
//	@Produce		json
//	@Param			status		query		string	false	"Status"	Enums(planning, active, on_hold, completed, cancelled)
//	@Param			priority	query		string	false	"Priority"	Enums(low, medium, high, critical)
//	@Param			page		query		int		false	"Page"		default(1)
//	@Param			page_size	query		int		false	"Page size"	default(20)
//	@Success		200			{object}	APIResponse[[]projectapp.ProjectResponse]
//	@Security		BearerAuth
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var filter projectapp.ProjectListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	projects, total, err := h.projectService.ListProjects(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, projects, total, filter.Page, filter.PageSize)
}

// UpdateProject godoc
// @ID           updateProject
//
//	@Summary		Replace a project
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Project ID"	format(uuid)
//	@Param			request	body		projectapp.ProjectRequest	true	"Project"
//	@Success		200		{object}	APIResponse[projectapp.ProjectResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := h.parseID(c, "project")
	if !ok {
		return
	}
	var req projectapp.ProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}
	p, err := h.projectService.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// DeleteProject godoc
// @ID           deleteProject
//
//	@Summary		Delete a project and its tasks
//	@Tags			projects
//	@Param			id	path	string	true	"Project ID"	format(uuid)
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := h.parseID(c, "project")
	if !ok {
		return
	}
	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateTask godoc
// @ID           createTask
//
//	@Summary		Create a task
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body		projectapp.TaskRequest	true	"Task"
//	@Success		201		{object}	APIResponse[projectapp.TaskResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/tasks [post]
func (h *ProjectHandler) CreateTask(c *gin.Context) {
	var req projectapp.TaskRequest
	if !h.BindJSON(c, &req) {
		return
	}
	task, err := h.projectService.CreateTask(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, task)
}

// GetTask godoc
// @ID           getTaskById
//
//	@Summary		Get task by ID
//	@Tags			projects
//	@Produce		json
//	@Param			id	path		string	true	"Task ID"	format(uuid)
//	@Success		200	{object}	APIResponse[projectapp.TaskResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/tasks/{id} [get]
func (h *ProjectHandler) GetTask(c *gin.Context) {
	id, ok := h.parseID(c, "task")
	if !ok {
		return
	}
	task, err := h.projectService.GetTask(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, task)
}

// ListTasks godoc
// @ID           listTasks
//
//	@Summary		List tasks
//	@Tags			projects
//	@Produce		json
//	@Param			project_id	query		string	false	"Project ID"	format(uuid)
//	@Param			status		query		string	false	"Status"		Enums(todo, in_progress, review, done, cancelled)
//	@Param			overdue		query		bool	false	"Only overdue tasks"
//	@Param			page		query		int		false	"Page"		default(1)
//	@Param			page_size	query		int		false	"Page size"	default(20)
//	@Success		200			{object}	APIResponse[[]projectapp.TaskResponse]
//	@Security		BearerAuth
//	@Router			/tasks [get]
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	var filter projectapp.TaskListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	tasks, total, err := h.projectService.ListTasks(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, tasks, total, filter.Page, filter.PageSize)
}

// UpdateTask godoc
// @ID           updateTask
//
//	@Summary		Replace a task
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Task ID"	format(uuid)
//	@Param			request	body		projectapp.TaskRequest	true	"Task"
//	@Success		200		{object}	APIResponse[projectapp.TaskResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/tasks/{id} [put]
func (h *ProjectHandler) UpdateTask(c *gin.Context) {
	id, ok := h.parseID(c, "task")
	if !ok {
		return
	}
	var req projectapp.TaskRequest
	if !h.BindJSON(c, &req) {
		return
	}
	task, err := h.projectService.UpdateTask(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, task)
}

// DeleteTask godoc
// @ID           deleteTask
//
//	@Summary		Delete a task
//	@Tags			projects
//	@Param			id	path	string	true	"Task ID"	format(uuid)
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/tasks/{id} [delete]
func (h *ProjectHandler) DeleteTask(c *gin.Context) {
	id, ok := h.parseID(c, "task")
	if !ok {
		return
	}
	if err := h.projectService.DeleteTask(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
