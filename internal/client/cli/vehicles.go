package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

func (a *App) ListVehicles(ctx context.Context, _ []string) error {
	vs, err := a.vehicles.Mine(ctx)
	if err != nil {
		return err
	}
	if len(vs) == 0 {
		fmt.Fprintln(a.out, "You have no vehicles.")
		return nil
	}
	printVehicles(a.out, vs)
	return nil
}

func (a *App) AddVehicle(ctx context.Context, _ []string) error {
	var req models.CreateVehicleRequest
	var err error
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Brand", &req.Brand},
		{"Model", &req.Model},
		{"Color", &req.Color},
		{"License plate", &req.LicensePlate},
	} {
		if *f.dst, err = GetSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}
	trunk, err := GetTextWithDefault(a.reader, "Trunk capacity: small, medium or large", string(models.TrunkMedium), a.out)
	if err != nil {
		return err
	}
	req.TrunkCapacity = models.TrunkCapacity(trunk)

	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}
	v, err := a.vehicles.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Vehicle #%d added: %s\n", v.ID, v)
	return nil
}

// EditVehicle sends only the fields the user changed.
func (a *App) EditVehicle(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Vehicle ID")
	if err != nil {
		return err
	}
	cur, err := a.ownVehicle(ctx, id)
	if err != nil {
		return err
	}

	var req models.UpdateVehicleRequest
	edit := func(prompt, old string) (*string, error) {
		s, err := GetTextWithDefault(a.reader, prompt, old, a.out)
		if err != nil || s == old {
			return nil, err
		}
		return &s, nil
	}
	if req.Brand, err = edit("Brand", cur.Brand); err != nil {
		return err
	}
	if req.Model, err = edit("Model", cur.Model); err != nil {
		return err
	}
	if req.Color, err = edit("Color", cur.Color); err != nil {
		return err
	}
	if req.LicensePlate, err = edit("License plate", cur.LicensePlate); err != nil {
		return err
	}
	if req.LicensePlate != nil {
		*req.LicensePlate = strings.ToUpper(*req.LicensePlate)
	}
	trunk, err := edit("Trunk capacity: small, medium or large", string(cur.TrunkCapacity))
	if err != nil {
		return err
	}
	if trunk != nil {
		tc := models.TrunkCapacity(*trunk)
		req.TrunkCapacity = &tc
	}

	if err := req.Validate(); err != nil {
		return err
	}
	v, err := a.vehicles.Update(ctx, id, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Vehicle #%d updated: %s\n", v.ID, v)
	return nil
}

// DeleteVehicle refuses vehicles that still have active trips.
func (a *App) DeleteVehicle(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Vehicle ID")
	if err != nil {
		return err
	}

	st, err := a.vehicles.CheckActiveTrips(ctx, id)
	if err != nil {
		return err
	}
	if st.HasActiveTrips {
		fmt.Fprintf(a.out, "Vehicle #%d has %d active trip(s). Cancel them before deleting it.\n", id, st.ActiveTripsCount)
		return nil
	}

	ok, err := GetYesNo(a.reader, fmt.Sprintf("Delete vehicle #%d?", id), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.vehicles.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Vehicle #%d deleted.\n", id)
	return nil
}

func (a *App) ownVehicle(ctx context.Context, id int64) (*models.Vehicle, error) {
	vs, err := a.vehicles.Mine(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range vs {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("vehicle #%d not found among your vehicles", id)
}
