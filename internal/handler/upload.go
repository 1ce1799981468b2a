package handler

import (
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/AveQY/ddhj/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"go.uber.org/zap"
)

type UploadHandler struct {
	cfg config.UploadConfig
}

func NewUploadHandler(cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// Upload stores one multipart image under a random name and returns its
// public URL. JPEG and PNG files are re-encoded, downscaled to the
// configured max width when wider; anything else is stored verbatim.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		Fail(c, "文件不能为空")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext
	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		zap.L().Error("create upload dir failed", zap.Error(err))
		Fail(c, "文件上传失败")
		return
	}
	dst := filepath.Join(h.cfg.Dir, name)

	switch ext {
	case ".jpg", ".jpeg", ".png":
		if err := h.saveCompressed(file, dst); err != nil {
			zap.L().Warn("image re-encode failed, storing original", zap.String("file", file.Filename), zap.Error(err))
			if err := c.SaveUploadedFile(file, dst); err != nil {
				zap.L().Error("save upload failed", zap.Error(err))
				Fail(c, "文件上传失败")
				return
			}
		}
	default:
		if err := c.SaveUploadedFile(file, dst); err != nil {
			zap.L().Error("save upload failed", zap.Error(err))
			Fail(c, "文件上传失败")
			return
		}
	}

	Success(c, "/api/image/"+name)
}

func (h *UploadHandler) saveCompressed(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, format, err := image.Decode(src)
	if err != nil {
		return err
	}
	if h.cfg.MaxWidth > 0 && img.Bounds().Dx() > h.cfg.MaxWidth {
		img = resize.Resize(uint(h.cfg.MaxWidth), 0, img, resize.Lanczos3)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if format == "png" {
		return png.Encode(out, img)
	}
	return jpeg.Encode(out, img, &jpeg.Options{Quality: 80})
}
