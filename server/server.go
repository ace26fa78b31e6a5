package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gopkg.in/mgo.v2"

	"github.com/Cloud-Pie/EFT/config"
	"github.com/Cloud-Pie/EFT/pkg/transformer"
	"github.com/Cloud-Pie/EFT/storage"
)

const HEADER_RECORDS = "X-Emission-Records"

//Set up server routes
func SetUpServer(conf config.SystemConfiguration) *gin.Engine {
	sysConfiguration = conf
	router := gin.Default()
	router.POST("/api/transformations", transformDocument)
	router.GET("/api/runs", getRuns)
	router.GET("/api/runs/:id", runByID)
	router.DELETE("/api/runs/:id", deleteRunByID)
	return router
}

// This handler receives a cloud partners document and responds with the transformed document.
// Every request draws its own random source. Bodies over max-request-bytes are rejected with 413.
func transformDocument(c *gin.Context) {
	if sysConfiguration.MaxRequestBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, sysConfiguration.MaxRequestBytes)
	}
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := transformer.Decode(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary := transformer.Transform(doc, transformer.NewSource(sysConfiguration.Seed))
	data, err := transformer.Encode(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header(HEADER_RECORDS, strconv.Itoa(summary.Records))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Retrieves all stored runs
func getRuns(c *gin.Context) {
	runDAO, ok := connectRunDAO(c)
	if !ok {
		return
	}
	defer runDAO.Close()
	runs, err := runDAO.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}

// This handler will match /api/runs/:id
// Retrieves the run with the correspondent :id
func runByID(c *gin.Context) {
	runDAO, ok := connectRunDAO(c)
	if !ok {
		return
	}
	defer runDAO.Close()
	run, err := runDAO.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, run)
}

// This handler will match /api/runs/:id
// Delete the run with the correspondent :id
func deleteRunByID(c *gin.Context) {
	runDAO, ok := connectRunDAO(c)
	if !ok {
		return
	}
	defer runDAO.Close()
	err := runDAO.DeleteById(c.Param("id"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, "Run removed")
}

//The returned DAO holds its own session, close it when the request is done
func connectRunDAO(c *gin.Context) (*storage.RunDAO, bool) {
	if !sysConfiguration.Storage.Enabled {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run history storage is disabled"})
		return nil, false
	}
	runDAO, err := storage.GetRunDAO(sysConfiguration.Storage.Server, sysConfiguration.Storage.Database)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return nil, false
	}
	return runDAO, true
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, storage.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, mgo.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
