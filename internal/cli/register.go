package cli

import (
	"context"

	"github.com/svilenkov/healthconnect/internal/common"
)

func (a *App) Register(ctx context.Context) {
	fullName, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading full name", "error", err)
		return
	}

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

	if err := a.session.Register(ctx, fullName, email, string(password)); err != nil {
		a.toastError("Registration Failed", err.Error())
		return
	}

	a.toastSuccess("Success", "Account created. You can now log in.")
}
