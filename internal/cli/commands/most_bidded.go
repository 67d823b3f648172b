package commands

import (
	"AuctionHouse/internal/cli/api"
	"AuctionHouse/internal/config"
	"AuctionHouse/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type mostBiddedCmd struct{}

func (mostBiddedCmd) Name() string { return "most-bidded" }
func (mostBiddedCmd) Description() string {
	return "Показать лот с наибольшим числом ставок"
}
func (mostBiddedCmd) Usage() string { return "most-bidded" }

func (mostBiddedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/items/most-bidded"
	resp, body, err := api.GetJSON(endpoint, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		fmt.Fprintln(Out, "Ставок пока нет")
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var it model.Item
	if err := json.Unmarshal(body, &it); err != nil {
		return fmt.Errorf("bad server response: %w", err)
	}
	printItem(&it)
	return nil
}

func init() { RegisterCmd(mostBiddedCmd{}) }
