package cli

import (
	"context"

	"github.com/svilenkov/healthconnect/internal/common"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading email", "error", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "error reading password", "error", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		a.toastError("Login Failed", err.Error())
		return
	}

	a.toastSuccess("Success", "Logged in as "+a.session.User().Email)
	a.runBootstrap(ctx)
}
