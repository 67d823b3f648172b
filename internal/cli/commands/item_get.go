package commands

import (
	"AuctionHouse/internal/cli/api"
	"AuctionHouse/internal/config"
	"AuctionHouse/internal/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// fetchItem запрашивает лот по id; отдельный хелпер, т.к. нужен и команде bid.
func fetchItem(cfg *config.Config, id uint64) (*model.Item, error) {
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/items/" + strconv.FormatUint(id, 10)
	resp, body, err := api.GetJSON(endpoint, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.New("item not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var it model.Item
	if err := json.Unmarshal(body, &it); err != nil {
		return nil, fmt.Errorf("bad server response: %w", err)
	}
	return &it, nil
}

func printItem(it *model.Item) {
	fmt.Fprintf(Out, "id:          %d\n", it.ID)
	fmt.Fprintf(Out, "title:       %s\n", it.Title)
	fmt.Fprintf(Out, "description: %s\n", it.Description)
	fmt.Fprintf(Out, "owner:       %d\n", it.Owner)
	fmt.Fprintf(Out, "new_owner:   %d\n", it.NewOwner)
	fmt.Fprintf(Out, "amount:      %d %s\n", it.Amount, it.Currency)
	fmt.Fprintf(Out, "active:      %t\n", it.IsActive)
	fmt.Fprintf(Out, "start_time:  %s\n", it.StartTime)
	fmt.Fprintf(Out, "end_time:    %s\n", it.EndTime)
	fmt.Fprintf(Out, "bids:        %d\n", len(it.Bids))
	for _, b := range it.Bids {
		lead := ""
		if b.IsActive {
			lead = "  <- leading"
		}
		fmt.Fprintf(Out, "  - %d %s by user %d%s\n", b.Amount, b.Currency, b.Owner, lead)
	}
}

type itemGetCmd struct{}

func (itemGetCmd) Name() string { return "item-get" }
func (itemGetCmd) Description() string {
	return "Показать лот по id"
}
func (itemGetCmd) Usage() string { return "item-get <id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	it, err := fetchItem(cfg, id)
	if err != nil {
		return err
	}
	printItem(it)
	return nil
}

func init() { RegisterCmd(itemGetCmd{}) }
