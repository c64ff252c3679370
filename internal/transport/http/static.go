package http

import (
	_ "embed"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var chatPage []byte

func chatPageHandler(c *gin.Context) {
	c.Data(stdhttp.StatusOK, "text/html; charset=utf-8", chatPage)
}
