package handlers

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"crmbackend/cache"
	"crmbackend/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nfnt/resize"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxPhotoSize      = 5 * 1024 * 1024
	compressThreshold = 1 * 1024 * 1024
	previewSize       = 200
)

var (
	s3Once   sync.Once
	s3Client *minio.Client
	s3Err    error
)

func objectStore() (*minio.Client, error) {
	s3Once.Do(func() {
		s3Client, s3Err = minio.New(os.Getenv("S3_ENDPOINT"), &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
			Secure: os.Getenv("S3_INSECURE") != "true",
		})
	})
	return s3Client, s3Err
}

// storedFormat names the object after the bytes actually uploaded: a
// re-encoded image is JPEG no matter what extension it arrived with.
func storedFormat(ext, contentType string, reencoded bool) (string, string) {
	if reencoded {
		return ".jpg", "image/jpeg"
	}
	return ext, contentType
}

func decodePhoto(file io.Reader, contentType string) (image.Image, []byte, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, err
	}
	var img image.Image
	if contentType == "image/png" {
		img, err = png.Decode(bytes.NewReader(data))
	} else {
		img, err = jpeg.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, nil, err
	}
	return img, data, nil
}

// UploadProductPhoto stores the main photo plus a thumbnail on S3 and saves
// both URLs on the product document. Large originals are resized to 800px
// wide before upload.
func UploadProductPhoto(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing photo file"})
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds the 5MB limit"})
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported file format: %s", contentType)})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer src.Close()

	img, original, err := decodePhoto(src, contentType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to decode image"})
		return
	}

	client, err := objectStore()
	if err != nil {
		config.LogError("handlers", "UploadProductPhoto", "s3 init", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Object storage unavailable"})
		return
	}
	bucket := os.Getenv("S3_BUCKET")

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	base := fmt.Sprintf("products/%s_%s_%d", productID.Hex(), uuid.New().String()[:8], time.Now().Unix())

	reencode := fileHeader.Size >= compressThreshold
	var bufMain bytes.Buffer
	if reencode {
		resized := resize.Resize(800, 0, img, resize.Lanczos3)
		if err := jpeg.Encode(&bufMain, resized, &jpeg.Options{Quality: 80}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode image"})
			return
		}
	} else {
		bufMain.Write(original)
	}
	mainExt, mainType := storedFormat(ext, contentType, reencode)
	mainName := base + mainExt
	previewName := base + "_preview.jpg"

	_, err = client.PutObject(c.Request.Context(), bucket, mainName, &bufMain, int64(bufMain.Len()),
		minio.PutObjectOptions{ContentType: mainType})
	if err != nil {
		config.LogError("handlers", "UploadProductPhoto", "main upload", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		return
	}

	thumb := resize.Thumbnail(previewSize, previewSize, img, resize.Lanczos3)
	var bufPreview bytes.Buffer
	if err := jpeg.Encode(&bufPreview, thumb, &jpeg.Options{Quality: 75}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode preview"})
		return
	}
	_, err = client.PutObject(c.Request.Context(), bucket, previewName, &bufPreview, int64(bufPreview.Len()),
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		config.LogError("handlers", "UploadProductPhoto", "preview upload", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload preview"})
		return
	}

	cdn := os.Getenv("CDN_DOMAIN")
	photoURL := fmt.Sprintf("https://%s/%s", cdn, mainName)
	previewURL := fmt.Sprintf("https://%s/%s", cdn, previewName)

	res, err := config.ProductCollection.UpdateOne(c.Request.Context(),
		bson.M{"_id": productID},
		bson.M{"$set": bson.M{
			"photo_url":         photoURL,
			"photo_preview_url": previewURL,
			"updated_at":        time.Now(),
		}})
	if err != nil {
		config.LogError("handlers", "UploadProductPhoto", "save urls", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo URLs"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	cache.Shared.Bump("products")
	c.JSON(http.StatusOK, gin.H{"photo_url": photoURL, "photo_preview_url": previewURL})
}
