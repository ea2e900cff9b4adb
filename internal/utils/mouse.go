package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	XConn *xgb.Conn
	XRoot xproto.Window
)

func InitX11() error {
	var err error
	XConn, err = xgb.NewConn()
	if err != nil {
		return err
	}

	setup := xproto.Setup(XConn)
	XRoot = setup.DefaultScreen(XConn).Root
	return nil
}

// GetGlobalPointer returns the pointer on the root window and whether
// button 1 is held.
func GetGlobalPointer() (int, int, bool, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, false, err
		}
	}

	reply, err := xproto.QueryPointer(XConn, XRoot).Reply()
	if err != nil {
		return 0, 0, false, err
	}

	held := reply.Mask&xproto.KeyButMaskButton1 != 0
	return int(reply.RootX), int(reply.RootY), held, nil
}

func CloseX11() {
	if XConn != nil {
		XConn.Close()
		XConn = nil
	}
}
