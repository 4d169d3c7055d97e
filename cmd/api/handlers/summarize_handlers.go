package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"multilang-summarizer/cmd/api/dto"
	"multilang-summarizer/cmd/api/services"
)

// SummarizeTextHandler godoc
// @Summary      Summarize text
// @Description  Summarize raw Hindi or English text
// @Tags         summarize
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SummarizeTextRequestDTO  true  "text to summarize"
// @Success      200   {object}  dto.SummaryResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /summarize/text [post]
func SummarizeTextHandler(svc *services.SummarizeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SummarizeTextRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "text is required"})
			return
		}

		resp, err := svc.SummarizeText(c.Request.Context(), req.Text, services.SummarizeOptions{
			Language:      req.Language,
			SummaryLength: req.SummaryLength,
			Method:        req.Method,
		})
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SummarizeURLHandler godoc
// @Summary      Summarize web article
// @Description  Fetch an article, extract its main text and summarize it
// @Tags         summarize
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SummarizeURLRequestDTO  true  "article url"
// @Success      200   {object}  dto.SummaryResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      422   {object}  dto.ErrorResponseDTO  "no article content"
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /summarize/url [post]
func SummarizeURLHandler(svc *services.SummarizeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SummarizeURLRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "url is required"})
			return
		}

		resp, err := svc.SummarizeURL(c.Request.Context(), req.URL, services.SummarizeOptions{
			Language:      req.Language,
			SummaryLength: req.SummaryLength,
			Method:        req.Method,
		})
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SummarizePDFHandler godoc
// @Summary      Summarize PDF
// @Description  Upload a PDF (first pages only) and summarize its text
// @Tags         summarize
// @Accept       multipart/form-data
// @Produce      json
// @Param        file            formData  file    true   "PDF file"
// @Param        language        formData  string  false  "hindi | english"  default(hindi)
// @Param        summary_length  formData  string  false  "short | medium | long | auto"  default(auto)
// @Param        method          formData  string  false  "extractive | abstractive"  default(extractive)
// @Success      200   {object}  dto.SummaryResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      422   {object}  dto.ErrorResponseDTO  "no readable text"
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /summarize/pdf [post]
func SummarizePDFHandler(svc *services.SummarizeService, maxUploadBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxUploadBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "file is too large"})
				return
			}
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "file is required"})
			return
		}

		f, err := fh.Open()
		if err != nil {
			abortWithError(c, err)
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			abortWithError(c, err)
			return
		}

		resp, err := svc.SummarizePDF(c.Request.Context(), fh.Filename, data, services.SummarizeOptions{
			Language:      c.DefaultPostForm("language", "hindi"),
			SummaryLength: c.DefaultPostForm("summary_length", "auto"),
			Method:        c.DefaultPostForm("method", "extractive"),
		})
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SummarizeYouTubeHandler godoc
// @Summary      Summarize YouTube video
// @Description  Fetch the caption track of a video and summarize the transcript
// @Tags         summarize
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SummarizeYouTubeRequestDTO  true  "video url"
// @Success      200   {object}  dto.SummaryResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      422   {object}  dto.ErrorResponseDTO  "no captions or video unavailable"
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /summarize/youtube [post]
func SummarizeYouTubeHandler(svc *services.SummarizeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SummarizeYouTubeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "url is required"})
			return
		}

		resp, err := svc.SummarizeYouTube(c.Request.Context(), req.URL, services.SummarizeOptions{
			Language:      req.Language,
			SummaryLength: req.SummaryLength,
			Method:        req.Method,
		})
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
