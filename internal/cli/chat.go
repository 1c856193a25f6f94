package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the archive in Azerbaijani",
		Long:  "Answer a single message, or read messages line by line from stdin when none is given.",
		Run:   runChat,
	}

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	s, svc := mustOpen()
	defer s.Close()

	if len(args) > 0 {
		fmt.Println(svc.Chat(cmd.Context(), strings.Join(args, " ")))
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			break
		}
		msg := strings.TrimSpace(sc.Text())
		if msg == "" {
			continue
		}
		fmt.Println(svc.Chat(cmd.Context(), msg))
	}
	if err := sc.Err(); err != nil {
		exitErr("read stdin", err)
	}
}
