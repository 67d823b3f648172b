package commands

import (
	"AuctionHouse/internal/cli/api"
	"AuctionHouse/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	fsrepo "AuctionHouse/internal/cli/repo/fs"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Показать, кем сервер видит текущего пользователя" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, _ := fsrepo.AuthFSStore{}.Load() // анонимный статус тоже валиден
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/test"
	resp, body, err := api.PostJSON(endpoint, nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var out struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("bad server response: %s", strings.TrimSpace(string(body)))
	}
	fmt.Fprintln(Out, out.Result)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
