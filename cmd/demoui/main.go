// Command demoui is a tiny human-facing page for trying out corrections: a
// text box posts to the gorilla/mux spellchecker API and the corrected
// phrase is rendered back. It is the corpus's only gin user, kept on its own
// distinct concern rather than dropped for overlapping with the JSON API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexicore/symspell/internal/config"
)

const page = `<!DOCTYPE html>
<html>
<head><title>symspell demo</title></head>
<body>
	<h1>Spelling correction demo</h1>
	<form id="f">
		<input id="text" type="text" size="60" placeholder="type a misspelled phrase" />
		<button type="submit">Correct</button>
	</form>
	<p id="result"></p>
	<script>
		document.getElementById("f").addEventListener("submit", async function(e) {
			e.preventDefault();
			const text = document.getElementById("text").value;
			const resp = await fetch("/correct", {
				method: "POST",
				headers: {"Content-Type": "application/json"},
				body: JSON.stringify({text: text}),
			});
			const body = await resp.json();
			document.getElementById("result").innerText = body.text || body.error || "";
		});
	</script>
</body>
</html>`

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("loading .env: %v", err)
	}

	apiAddr := config.GetEnv("SYMSPELL_API_ADDR", "http://localhost:8080")
	listenAddr := config.GetEnv("DEMOUI_ADDR", ":8081")

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	})

	r.POST("/correct", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := http.Post(fmt.Sprintf("%s/spellchecker/", apiAddr), "application/json", bytes.NewReader(body))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		defer resp.Body.Close()

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(resp.StatusCode, result)
	})

	log.Printf("demoui: listening on %s, proxying to %s", listenAddr, apiAddr)
	if err := r.Run(listenAddr); err != nil {
		log.Fatalf("demoui: server error: %v", err)
	}
}
