package platform

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// X11Pointer queries the root-window pointer position directly from the X
// server. Used when the window is unfocused (wallpaper/kiosk mode), where
// raylib stops receiving motion events.
type X11Pointer struct {
	conn *xgb.Conn
	root xproto.Window
}

func NewX11Pointer() (*X11Pointer, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	setup := xproto.Setup(conn)
	return &X11Pointer{
		conn: conn,
		root: setup.DefaultScreen(conn).Root,
	}, nil
}

// Position returns the global pointer position in screen pixels.
func (p *X11Pointer) Position() (int, int, error) {
	reply, err := xproto.QueryPointer(p.conn, p.root).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(reply.RootX), int(reply.RootY), nil
}

func (p *X11Pointer) Close() {
	p.conn.Close()
}
