package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"hostel-listing-portal/internal/config"
	"hostel-listing-portal/internal/imagehost"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig wires stores and the image host into the HTTP façade.
type RouterConfig struct {
	Server    config.ServerConfig
	Branches  BranchStore
	Gallery   GalleryStore
	Enquiries EnquiryStore
	Images    imagehost.Host
}

// NewRouter assembles the gin engine: CORS allow-list, request logging,
// panic recovery and all resource routes.
func NewRouter(rc RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(recoveryMiddleware(rc.Server))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     rc.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Hostel listing API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	branchHandler := NewBranchHandler(rc.Branches, rc.Images)
	branches := r.Group("/api/branches")
	{
		branches.POST("", branchHandler.Create)
		branches.GET("", branchHandler.List)
		branches.GET("/:id", branchHandler.Get)
		branches.PUT("/:id", branchHandler.Update)
		branches.DELETE("/:id", branchHandler.Delete)
	}

	galleryHandler := NewGalleryHandler(rc.Gallery, rc.Branches, rc.Images)
	gallery := r.Group("/api/gallery")
	{
		gallery.POST("", galleryHandler.Create)
		gallery.POST("/upload", galleryHandler.Upload)
		gallery.GET("", galleryHandler.List)
		gallery.GET("/:id", galleryHandler.Get)
		gallery.PUT("/:id", galleryHandler.Update)
		gallery.DELETE("/:id", galleryHandler.Delete)

		gallery.GET("/branch/:branchId", galleryHandler.ListForBranch)
		gallery.POST("/branch/:branchId", galleryHandler.CreateForBranch)
		gallery.PUT("/branch/:branchId/image/:imageId", galleryHandler.UpdateForBranch)
		gallery.DELETE("/branch/:branchId/image/:imageId", galleryHandler.DeleteForBranch)
		gallery.DELETE("/branch/:branchId", galleryHandler.DeleteAllForBranch)

		gallery.DELETE("/delete-from-host", galleryHandler.DeleteFromHost)
	}

	enquiryHandler := NewEnquiryHandler(rc.Enquiries)
	enquiries := r.Group("/api/enquiries")
	{
		enquiries.POST("", enquiryHandler.Create)
		enquiries.GET("", enquiryHandler.List)
		enquiries.GET("/:id", enquiryHandler.Get)
		enquiries.PUT("/:id", enquiryHandler.Update)
		enquiries.DELETE("/:id", enquiryHandler.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Route not found",
			"path":    c.Request.URL.Path,
		})
	})

	return r
}

// recoveryMiddleware converts panics to the JSON envelope. Panic detail is
// echoed only in development.
func recoveryMiddleware(server config.ServerConfig) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Unhandled error: %v", recovered)
		body := gin.H{"success": false, "error": "Internal server error"}
		if server.IsDevelopment() {
			body["details"] = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
