package commands

import (
	"AuctionHouse/internal/cli/api"
	"AuctionHouse/internal/config"
	"AuctionHouse/internal/model"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	fsrepo "AuctionHouse/internal/cli/repo/fs"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Выставить лот на аукцион"
}
func (itemAddCmd) Usage() string {
	return "item-add <id> <title> <amount> <currency> <end_time> [description]"
}

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 5 {
		return ErrUsage
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	amount, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return ErrUsage
	}
	description := ""
	if len(args) > 5 {
		description = strings.Join(args[5:], " ")
	}

	token, err := fsrepo.AuthFSStore{}.Load()
	if err != nil {
		return errors.New("not logged in (run: login <login> <password>)")
	}

	payload := model.CreateItem{
		Title:       args[1],
		Description: description,
		IsActive:    true,
		StartTime:   time.Now().UTC().Format(time.RFC3339),
		EndTime:     args[4],
		Currency:    args[3],
		Amount:      uint32(amount),
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/items/" + strconv.FormatUint(id, 10)
	resp, body, err := api.PostJSON(endpoint, payload, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
		fmt.Fprintf(Out, "Лот %d выставлен\n", id)
		return nil
	case http.StatusUnauthorized:
		return errors.New("not logged in")
	case http.StatusConflict:
		return errors.New("item refused (duplicate id or bad payload)")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(itemAddCmd{}) }
