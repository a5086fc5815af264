package bridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bnema/spacesync/internal/application/state"
	"github.com/bnema/spacesync/internal/domain/entity"
)

type spacesResponse struct {
	Spaces []entity.Space `json:"spaces"`
	Closed []entity.Space `json:"closed"`
}

type renameRequest struct {
	Name            *string `json:"name"`
	ExpectedVersion int64   `json:"expected_version"`
}

type restoreRequest struct {
	Type entity.WindowType `json:"type"`
}

type windowsRequest struct {
	Windows []entity.Window `json:"windows"`
}

type tabsRequest struct {
	Type entity.WindowType `json:"type"`
	Tabs []entity.Tab      `json:"tabs"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"spaces": len(s.spaces.GetAllSpaces()),
		"closed": len(s.spaces.GetClosedSpaces()),
	})
}

// listSpaces accepts ?state=active|closed to return only one list.
func (s *Server) listSpaces(c *gin.Context) {
	resp := spacesResponse{Spaces: []entity.Space{}, Closed: []entity.Space{}}
	switch c.DefaultQuery("state", "all") {
	case "active":
		resp.Spaces = s.spaces.GetAllSpaces()
	case "closed":
		resp.Closed = s.spaces.GetClosedSpaces()
	case "all":
		resp.Spaces = s.spaces.GetAllSpaces()
		resp.Closed = s.spaces.GetClosedSpaces()
	default:
		abortWithError(c, fmt.Errorf("%w: state must be active, closed, or all", entity.ErrInvalidArgument))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getSpace(c *gin.Context) {
	id := entity.SpaceID(c.Param("id"))
	space, ok := s.spaces.GetSpaceByID(id)
	if !ok {
		abortWithError(c, fmt.Errorf("get space %s: %w", id, entity.ErrSpaceNotFound))
		return
	}
	c.JSON(http.StatusOK, space)
}

func (s *Server) renameSpace(c *gin.Context) {
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", entity.ErrInvalidArgument, err))
		return
	}
	if req.Name == nil {
		abortWithError(c, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument))
		return
	}

	space, err := s.spaces.RenameSpace(c.Request.Context(), state.RenameInput{
		SpaceID:         entity.SpaceID(c.Param("id")),
		Name:            *req.Name,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, space)
}

func (s *Server) closeSpace(c *gin.Context) {
	id := entity.SpaceID(c.Param("id"))
	windowID, ok := id.WindowID()
	if !ok {
		abortWithError(c, fmt.Errorf("%w: %s is not an active space", entity.ErrInvalidArgument, id))
		return
	}
	space, err := s.spaces.CloseSpace(c.Request.Context(), windowID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, space)
}

func (s *Server) restoreSpace(c *gin.Context) {
	var req restoreRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, fmt.Errorf("%w: %v", entity.ErrInvalidArgument, err))
			return
		}
	}
	snap, err := s.spaces.RestoreSpace(c.Request.Context(), entity.SpaceID(c.Param("id")), req.Type)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, snap)
}

func (s *Server) deleteSpace(c *gin.Context) {
	if err := s.spaces.DeleteSpace(c.Request.Context(), entity.SpaceID(c.Param("id"))); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listRestores(c *gin.Context) {
	pending := s.restores.Pending()
	if pending == nil {
		pending = []entity.RestoreSnapshot{}
	}
	c.JSON(http.StatusOK, gin.H{"restores": pending})
}

func (s *Server) sync(c *gin.Context) {
	report, err := s.spaces.SynchronizeWindowsAndSpaces(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// windowsReplaced takes the real host's full window list, typically sent
// once when the extension connects. Reconciliation only archives spaces after
// the first one.
func (s *Server) windowsReplaced(c *gin.Context) {
	var req windowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", entity.ErrInvalidArgument, err))
		return
	}
	windows, err := s.host.Replace(c.Request.Context(), req.Windows)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": windows})
}

func (s *Server) windowCreated(c *gin.Context) {
	var window entity.Window
	if err := c.ShouldBindJSON(&window); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", entity.ErrInvalidArgument, err))
		return
	}
	attached, err := s.host.Attach(c.Request.Context(), window)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attached)
}

// windowTabs replaces the tab list of a mirrored window and refreshes the
// space bound to it.
func (s *Server) windowTabs(c *gin.Context) {
	windowID, err := parseWindowID(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	var req tabsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", entity.ErrInvalidArgument, err))
		return
	}

	ctx := c.Request.Context()
	if _, err := s.host.Attach(ctx, entity.Window{ID: windowID, Type: req.Type, Tabs: req.Tabs}); err != nil {
		abortWithError(c, err)
		return
	}
	space, err := s.spaces.RefreshSpaceTabs(ctx, windowID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, space)
}

func (s *Server) windowRemoved(c *gin.Context) {
	windowID, err := parseWindowID(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := s.host.CloseWindow(c.Request.Context(), windowID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

func parseWindowID(raw string) (entity.WindowID, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: invalid window id %q", entity.ErrInvalidArgument, raw)
	}
	return entity.WindowID(n), nil
}
