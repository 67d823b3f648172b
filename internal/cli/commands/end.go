package commands

import (
	"AuctionHouse/internal/cli/api"
	"AuctionHouse/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	fsrepo "AuctionHouse/internal/cli/repo/fs"
)

type endCmd struct{}

func (endCmd) Name() string { return "end" }
func (endCmd) Description() string {
	return "Остановить аукцион по лоту"
}
func (endCmd) Usage() string { return "end <id>" }

func (endCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}

	token, err := fsrepo.AuthFSStore{}.Load()
	if err != nil {
		return errors.New("not logged in (run: login <login> <password>)")
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/items/" + strconv.FormatUint(id, 10) + "/end"
	resp, body, err := api.PostJSON(endpoint, nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		// покажем итог: победитель и финальная сумма
		if it, err := fetchItem(cfg, id); err == nil {
			if it.NewOwner == 0 {
				fmt.Fprintf(Out, "Лот %d закрыт без ставок\n", id)
			} else {
				fmt.Fprintf(Out, "Лот %d закрыт: победитель user %d, сумма %d %s\n", id, it.NewOwner, it.Amount, it.Currency)
			}
		} else {
			fmt.Fprintf(Out, "Лот %d закрыт\n", id)
		}
		return nil
	case http.StatusUnauthorized:
		return errors.New("not logged in")
	case http.StatusNotFound:
		return errors.New("item not found")
	case http.StatusConflict:
		return errors.New("auction already closed")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(endCmd{}) }
