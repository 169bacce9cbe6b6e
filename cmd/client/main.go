package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Küçük bir duman testi istemcisi. Sihirbaz akışını uçtan uca sürer:
// oturum aç, mod seç, video ekle, bilgileri gir ve gönder.

type sessionResponse struct {
	SessionID string `json:"session_id"`
	Step      string `json:"step"`
}

func main() {
	server := flag.String("server", "http://localhost:3000/api/v1", "Server base URL")
	filePath := flag.String("file", "testdata/sample.mp4", "Yüklenecek video dosyası")
	name := flag.String("name", "Convidado Teste", "Gönderen adı")
	relation := flag.String("relation", "amigo", "Çiftle ilişkisi")
	note := flag.String("note", "Felicidades!", "İsteğe bağlı not")
	asRecording := flag.Bool("record", false, "Dosyayı chunk chunk kayıt akışı üzerinden gönder")
	chunkSize := flag.Int64("chunk-size", 2*1024*1024, "Kayıt modunda chunk boyutu")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Minute}

	session := postJSON(client, *server+"/wizard/session", map[string]string{})
	fmt.Printf("Oturum: %s (adım: %s)\n", session.SessionID, session.Step)
	base := *server + "/wizard/" + session.SessionID

	mode := "upload"
	if *asRecording {
		mode = "record"
	}
	postJSON(client, base+"/mode", map[string]string{"mode": mode})
	postJSON(client, base+"/capture", nil)

	if *asRecording {
		sendAsRecording(client, base, *filePath, *chunkSize)
	} else {
		sendAsUpload(client, base, *filePath)
	}

	patchJSON(client, base+"/preview", map[string]interface{}{
		"note":             *note,
		"agree_horizontal": true,
	})
	postJSON(client, base+"/continue", nil)
	postJSON(client, base+"/info", map[string]string{"name": *name, "relation": *relation})

	final := postJSON(client, base+"/submit", nil)
	fmt.Printf("Gönderim tamam, adım: %s\n", final.Step)
}

func sendAsUpload(client *http.Client, base, filePath string) {
	file, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("Dosya açılamadı: %v", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		log.Fatalf("Form oluşturulamadı: %v", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		log.Fatalf("Dosya kopyalanamadı: %v", err)
	}
	writer.Close()

	doMultipart(client, base+"/upload", writer.FormDataContentType(), &buf)
	fmt.Println("Video yüklendi")
}

func sendAsRecording(client *http.Client, base, filePath string, chunkSize int64) {
	file, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("Dosya açılamadı: %v", err)
	}
	defer file.Close()

	postJSON(client, base+"/recording/start", map[string]string{"content_type": "video/webm"})

	chunk := make([]byte, chunkSize)
	for index := 1; ; index++ {
		n, err := io.ReadFull(file, chunk)
		if n > 0 {
			var buf bytes.Buffer
			writer := multipart.NewWriter(&buf)
			writer.WriteField("chunk_index", fmt.Sprintf("%d", index))
			part, _ := writer.CreateFormFile("file", fmt.Sprintf("chunk-%d", index))
			part.Write(chunk[:n])
			writer.Close()
			doMultipart(client, base+"/recording/chunk", writer.FormDataContentType(), &buf)
			fmt.Printf("Chunk %d gönderildi (%d bytes)\n", index, n)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			log.Fatalf("Dosya okunamadı: %v", err)
		}
	}

	postJSON(client, base+"/recording/stop", nil)
	fmt.Println("Kayıt tamamlandı")
}

func postJSON(client *http.Client, url string, body interface{}) *sessionResponse {
	return sendJSON(client, http.MethodPost, url, body)
}

func patchJSON(client *http.Client, url string, body interface{}) *sessionResponse {
	return sendJSON(client, http.MethodPatch, url, body)
}

func sendJSON(client *http.Client, method, url string, body interface{}) *sessionResponse {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			log.Fatalf("JSON oluşturulamadı: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		log.Fatalf("İstek oluşturulamadı: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("İstek başarısız (%s): %v", url, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		log.Fatalf("%s %d döndü: %s", url, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var session sessionResponse
	_ = json.Unmarshal(raw, &session)
	return &session
}

func doMultipart(client *http.Client, url, contentType string, body io.Reader) {
	resp, err := client.Post(url, contentType, body)
	if err != nil {
		log.Fatalf("İstek başarısız (%s): %v", url, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		log.Fatalf("%s %d döndü: %s", url, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
}
