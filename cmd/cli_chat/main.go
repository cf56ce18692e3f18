package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"chatroom/internal/client"
	"chatroom/internal/config"
	"chatroom/internal/domain"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadClientConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	chat := client.NewChatClient(cfg.APIURL, &http.Client{Timeout: cfg.Timeout}, logger)

	name, err := chat.StartSession(ctx)
	if err != nil {
		log.Fatalf("start session: %v", err)
	}
	fmt.Printf("Conectado como %q. Comandos: /list, /quit\n", name)

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		text := strings.TrimSpace(line)
		switch {
		case text == "":
			continue
		case strings.EqualFold(text, "/quit"):
			fmt.Println("Saliendo del chat...")
			return
		case strings.EqualFold(text, "/list"):
			if err := printHistory(ctx, chat); err != nil {
				fmt.Printf("error listando mensajes: %v\n", err)
			}
		default:
			if _, err := chat.PostMessage(ctx, domain.Message{Author: name, Text: text}); err != nil {
				fmt.Printf("error enviando mensaje: %v\n", err)
			}
		}
	}
}

func printHistory(ctx context.Context, chat *client.ChatClient) error {
	entries, err := chat.Messages(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("[%s] %s > %s\n", e.Timestamp.Local().Format("15:04:05"), e.Author, e.Text)
	}
	return nil
}
