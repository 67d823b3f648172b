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

type bidCmd struct{}

func (bidCmd) Name() string { return "bid" }
func (bidCmd) Description() string {
	return "Сделать ставку по лоту"
}
func (bidCmd) Usage() string { return "bid <id> <amount> [description]" }

func (bidCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	amount, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return ErrUsage
	}
	description := ""
	if len(args) > 2 {
		description = strings.Join(args[2:], " ")
	}

	st := fsrepo.AuthFSStore{}
	token, err := st.Load()
	if err != nil {
		return errors.New("not logged in (run: login <login> <password>)")
	}
	login, err := st.LoadLogin()
	if err != nil {
		return errors.New("no stored login, re-login first")
	}

	// валюта ставки должна совпадать с валютой лота — берём её у сервера
	it, err := fetchItem(cfg, id)
	if err != nil {
		return err
	}

	payload := model.CreateBid{
		Description: description,
		Amount:      uint32(amount),
		Currency:    string(it.Currency),
		IsActive:    true,
		Owner:       login,
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/items/" + strconv.FormatUint(id, 10) + "/bid"
	resp, body, err := api.PostJSON(endpoint, payload, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Ставка %d принята, текущая сумма лота %d\n", amount, amount)
		return nil
	case http.StatusUnauthorized:
		return errors.New("not logged in")
	case http.StatusConflict:
		return fmt.Errorf("bid rejected: %s", strings.TrimSpace(string(body)))
	case http.StatusGone:
		return errors.New("auction expired")
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("bid rejected: %s", strings.TrimSpace(string(body)))
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(bidCmd{}) }
