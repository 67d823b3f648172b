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

	fsrepo "AuctionHouse/internal/cli/repo/fs"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "item-edit" }
func (itemEditCmd) Description() string {
	return "Изменить свой лот (заголовок, описание, сроки)"
}
func (itemEditCmd) Usage() string {
	return "item-edit <id> <title> <amount> <currency> <end_time> [description]"
}

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	// сервер перезаписывает все редактируемые поля, поэтому стартовое
	// время переотправляем как есть
	cur, err := fetchItem(cfg, id)
	if err != nil {
		return err
	}

	payload := model.CreateItem{
		Title:       args[1],
		Description: description,
		IsActive:    true,
		StartTime:   cur.StartTime,
		EndTime:     args[4],
		Currency:    args[3],
		Amount:      uint32(amount),
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/items/" + strconv.FormatUint(id, 10)
	resp, body, err := api.PutJSON(endpoint, payload, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Лот %d обновлён\n", id)
		return nil
	case http.StatusUnauthorized:
		return errors.New("not logged in")
	case http.StatusNotFound:
		return errors.New("item not found")
	case http.StatusForbidden:
		return errors.New("only the owner can edit an item")
	case http.StatusConflict:
		return errors.New("auction is not active")
	case http.StatusGone:
		return errors.New("auction expired")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(itemEditCmd{}) }
