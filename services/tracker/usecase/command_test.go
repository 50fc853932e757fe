package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mototrack/mototrack/internal/pkg/constants"
	"github.com/mototrack/mototrack/services/tracker/mocks"
	"github.com/stretchr/testify/assert"
)

type dispatcherHarness struct {
	d      *CommandDispatcher
	repo   *mocks.MockDeviceStateRepo
	states []bool
	reset  func()
}

func newDispatcherHarness(ctrl *gomock.Controller) *dispatcherHarness {
	h := &dispatcherHarness{repo: mocks.NewMockDeviceStateRepo(ctrl)}
	h.d = NewCommandDispatcher(h.repo, func(busy bool) { h.states = append(h.states, busy) })
	h.d.afterFunc = func(d time.Duration, f func()) { h.reset = f }
	return h
}

func TestSend_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatcherHarness(ctrl)
	h.repo.EXPECT().SetPendingCommand(gomock.Any(), constants.CommandArm).Return(nil)

	err := h.d.Send(context.Background(), constants.CommandArm)

	assert.NoError(t, err)
	assert.True(t, h.d.Busy())
	assert.Equal(t, []bool{true}, h.states)

	// busy window elapses
	h.reset()
	assert.False(t, h.d.Busy())
	assert.Equal(t, []bool{true, false}, h.states)
}

func TestSend_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatcherHarness(ctrl)

	err := h.d.Send(context.Background(), "SELF_DESTRUCT")

	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.False(t, h.d.Busy())
	assert.Empty(t, h.states)
}

func TestSend_WhileBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatcherHarness(ctrl)
	h.repo.EXPECT().SetPendingCommand(gomock.Any(), constants.CommandReboot).Return(nil)

	assert.NoError(t, h.d.Send(context.Background(), constants.CommandReboot))

	err := h.d.Send(context.Background(), constants.CommandArm)
	assert.ErrorIs(t, err, ErrCommandPending)
}

func TestSend_RepoErrorRollsBackBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatcherHarness(ctrl)
	h.repo.EXPECT().SetPendingCommand(gomock.Any(), constants.CommandDisarm).
		Return(errors.New("connection refused"))

	err := h.d.Send(context.Background(), constants.CommandDisarm)

	assert.Error(t, err)
	assert.False(t, h.d.Busy())
	assert.Equal(t, []bool{true, false}, h.states)
	assert.Nil(t, h.reset)
}

func TestToggleArm_RequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatcherHarness(ctrl)

	command, err := h.d.ToggleArm(context.Background(), false)

	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Empty(t, command)
}

func TestToggleArm_ArmedDispatchesDisarm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatcherHarness(ctrl)
	h.repo.EXPECT().ArmedState(gomock.Any()).Return(true, nil)
	h.repo.EXPECT().SetPendingCommand(gomock.Any(), constants.CommandDisarm).Return(nil)

	command, err := h.d.ToggleArm(context.Background(), true)

	assert.NoError(t, err)
	assert.Equal(t, constants.CommandDisarm, command)
}

func TestToggleArm_DisarmedDispatchesArm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatcherHarness(ctrl)
	h.repo.EXPECT().ArmedState(gomock.Any()).Return(false, nil)
	h.repo.EXPECT().SetPendingCommand(gomock.Any(), constants.CommandArm).Return(nil)

	command, err := h.d.ToggleArm(context.Background(), true)

	assert.NoError(t, err)
	assert.Equal(t, constants.CommandArm, command)
}

func TestToggleArm_StateReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatcherHarness(ctrl)
	h.repo.EXPECT().ArmedState(gomock.Any()).Return(false, errors.New("timeout"))

	_, err := h.d.ToggleArm(context.Background(), true)

	assert.Error(t, err)
	assert.False(t, h.d.Busy())
}
