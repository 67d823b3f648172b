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

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать все лоты"
}
func (itemsCmd) Usage() string { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/items"
	resp, body, err := api.GetJSON(endpoint, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNoContent {
		fmt.Fprintln(Out, "Нет лотов")
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var items []model.Item
	if err := json.Unmarshal(body, &items); err != nil {
		return fmt.Errorf("bad server response: %w", err)
	}
	for _, it := range items {
		state := "active"
		if !it.IsActive {
			state = "closed"
		}
		fmt.Fprintf(Out, "- %d  %s  %d %s  bids=%d  (%s)\n", it.ID, it.Title, it.Amount, it.Currency, len(it.Bids), state)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
