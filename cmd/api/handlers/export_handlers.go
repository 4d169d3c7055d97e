package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"multilang-summarizer/cmd/api/services"
	"multilang-summarizer/exporter"
)

// ExportHandler godoc
// @Summary      Export summary
// @Description  Download a summary as PDF, Word (docx) or Markdown
// @Tags         export
// @Accept       x-www-form-urlencoded
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Produce      text/markdown
// @Param        format    path      string  true   "pdf | word | markdown"
// @Param        summary   formData  string  true   "summary text"
// @Param        title     formData  string  false  "document title"  default(Summary)
// @Param        language  formData  string  false  "hindi | english"  default(hindi)
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /export/{format} [post]
func ExportHandler(svc *services.ExportService, format exporter.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Export(
			format,
			c.PostForm("summary"),
			c.DefaultPostForm("title", exporter.DefaultTitle),
			c.DefaultPostForm("language", "hindi"),
		)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, res.Filename))
		c.Data(http.StatusOK, res.ContentType, res.Data)
	}
}
