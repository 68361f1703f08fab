package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campus-board/api/trace"
	"campus-board/dto"
	"campus-board/internal/logger"
	"campus-board/services"
)

// ListItemsHandler godoc
// @Summary      List items
// @Description  List projected items of one type (post, link, class, comment, rating) with the user's vote state
// @Tags         items
// @Param        type            path   string    true   "Item type"
// @Param        page            query  int       false  "Page number (1-based)"
// @Param        page_size       query  int       false  "Page size (clamped to the configured maximum)"
// @Param        user_id         query  string    false  "Voter whose votes fill voted/voteValue"
// @Param        parent          query  string    false  "Parent post (comments) or class (ratings)"
// @Param        parent_comment  query  string    false  "Parent comment (comments)"
// @Param        tags            query  []string  false  "Tags (OR match)"
// @Produce      json
// @Success      200  {object}  dto.PaginationItemInfoDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /items/{type} [get]
func ListItemsHandler(svc *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListItemsInput
		in.Type = c.Param("type")
		// pagination
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.Query("page_size"))
		// filters
		in.Voter = c.Query("user_id")
		in.Parent = c.Query("parent")
		in.ParentComment = c.Query("parent_comment")
		in.Tags = c.QueryArray("tags")

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetItemHandler godoc
// @Summary      Get item by id
// @Description  Get a single projected item by its id
// @Tags         items
// @Param        type     path   string  true   "Item type"
// @Param        id       path   string  true   "Item id"
// @Param        user_id  query  string  false  "Voter whose vote fills voted/voteValue"
// @Produce      json
// @Success      200  {object}  object
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /items/{type}/{id} [get]
func GetItemHandler(svc *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), c.Param("type"), c.Param("id"), c.Query("user_id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// writeError 는 서비스 에러를 HTTP 상태 코드로 매핑한다.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownItemType):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: services.ErrUnknownItemType.Error()})
	case errors.Is(err, services.ErrInvalidPage):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: services.ErrInvalidPage.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
	default:
		_ = c.Error(err)
		logger.ErrorWithFields("item request failed", logger.Fields{
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal error"})
	}
}
