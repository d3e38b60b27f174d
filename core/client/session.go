// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Thin client for an OMERO session gateway. The session is an opaque
// capability handed to the conversion layers per call - nothing in this
// repository caches or pools one. All calls block for the round trip, no
// retry or timeout policy is applied here.
package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"

	"github.com/stoffelc/imagej-omero/core/omeroerr"
	"github.com/stoffelc/imagej-omero/core/rtypes"
	protos "github.com/stoffelc/imagej-omero/generated-protos"
)

// Session - an open connection to an OMERO server, able to read script
// inputs, write script outputs and issue gateway operations
type Session interface {
	// Property - connection properties, keyed omero.host, omero.port,
	// omero.user, omero.pass, omero.sessionid. Empty string if unset.
	Property(name string) string

	// GetInputKeys - names of the script inputs the server holds for this session
	GetInputKeys() ([]string, error)

	// GetInput - one script input value
	GetInput(name string) (rtypes.RType, error)

	// SetOutput - writes one script output value
	SetOutput(name string, value rtypes.RType) error

	// Call - issues a raw gateway operation, returning the raw result payload
	Call(op string, params map[string]interface{}) (json.RawMessage, error)

	Close()
}

// wsSession - Session implementation over a websocket to the gateway.
// Frames are binary protobuf WSMessage envelopes. Calls are serialised:
// one request in flight at a time, responses matched by message id.
type wsSession struct {
	conn  *websocket.Conn
	props map[string]string
	mu    sync.Mutex
}

// Connect - dials the gateway and authenticates, either joining an existing
// session by id or logging in with user/pass
func Connect(info ConnectInfo) (Session, error) {
	protocol := "ws"
	if info.Encrypted {
		protocol = "wss"
	}

	wsUrl := url.URL{Scheme: protocol, Host: fmt.Sprintf("%v:%v", info.Host, info.Port), Path: "/omero"}
	conn, resp, err := websocket.DefaultDialer.Dial(wsUrl.String(), nil)
	if err != nil {
		return nil, omeroerr.MakeCommunicationError("connect", err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	s := &wsSession{
		conn: conn,
		props: map[string]string{
			"omero.host":      info.Host,
			"omero.port":      strconv.Itoa(info.Port),
			"omero.user":      info.User,
			"omero.pass":      info.Pass,
			"omero.sessionid": info.SessionID,
		},
	}

	params := map[string]interface{}{}
	if len(info.SessionID) > 0 {
		params["sessionId"] = info.SessionID
	} else {
		params["user"] = info.User
		params["pass"] = info.Pass
	}

	result, err := s.Call("session.open", params)
	if err != nil {
		conn.Close()
		return nil, err
	}

	// Server assigns (or echoes) the session id
	opened := struct {
		SessionID string `json:"sessionId"`
	}{}
	if err := json.Unmarshal(result, &opened); err != nil {
		conn.Close()
		return nil, omeroerr.MakeCommunicationError("session.open", errors.Wrap(err, "bad session.open response"))
	}
	s.props["omero.sessionid"] = opened.SessionID

	return s, nil
}

func (s *wsSession) Property(name string) string {
	return s.props[name]
}

func (s *wsSession) Call(op string, params map[string]interface{}) (json.RawMessage, error) {
	resp, err := s.call(op, params, nil)
	if err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// call sends one request envelope and blocks for its response. Op parameters
// ride as JSON in the params field, an RType value (if any) rides natively.
func (s *wsSession) call(op string, params map[string]interface{}, value *protos.WSValue) (*protos.WSMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := &protos.WSMessage{
		MsgId: uuid.New().String(),
		Op:    op,
		Value: value,
	}
	if params != nil {
		encoded, err := json.Marshal(params)
		if err != nil {
			return nil, omeroerr.MakeCommunicationError(op, errors.Wrap(err, "bad params"))
		}
		req.Params = encoded
	}

	data, err := proto.Marshal(req)
	if err != nil {
		return nil, omeroerr.MakeCommunicationError(op, errors.Wrap(err, "encode failed"))
	}
	if err := s.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		return nil, omeroerr.MakeCommunicationError(op, errors.Wrap(err, "write failed"))
	}

	// Read until we see our message id. The gateway can interleave
	// notifications for other consumers of the socket, those are skipped.
	for {
		mtype, data, err := s.conn.ReadMessage()
		if err != nil {
			return nil, omeroerr.MakeCommunicationError(op, errors.Wrap(err, "read failed"))
		}
		if mtype != websocket.BinaryMessage {
			return nil, omeroerr.MakeCommunicationError(op, fmt.Errorf("unexpected frame type: %v", mtype))
		}

		resp := &protos.WSMessage{}
		if err := proto.Unmarshal(data, resp); err != nil {
			return nil, omeroerr.MakeCommunicationError(op, errors.Wrap(err, "decode failed"))
		}
		if resp.MsgId != req.MsgId {
			continue
		}
		if len(resp.Error) > 0 {
			return nil, omeroerr.MakeCommunicationError(op, errors.New(resp.Error))
		}
		return resp, nil
	}
}

func (s *wsSession) GetInputKeys() ([]string, error) {
	result, err := s.Call("session.inputKeys", nil)
	if err != nil {
		return nil, err
	}

	keys := []string{}
	if err := json.Unmarshal(result, &keys); err != nil {
		return nil, omeroerr.MakeCommunicationError("session.inputKeys", err)
	}
	return keys, nil
}

func (s *wsSession) GetInput(name string) (rtypes.RType, error) {
	resp, err := s.call("session.getInput", map[string]interface{}{"name": name}, nil)
	if err != nil {
		return nil, err
	}
	return rtypes.FromProto(resp.Value), nil
}

func (s *wsSession) SetOutput(name string, value rtypes.RType) error {
	_, err := s.call("session.setOutput", map[string]interface{}{"name": name}, rtypes.ToProto(value))
	return err
}

func (s *wsSession) Close() {
	// Best effort, the server reaps dead sessions anyway
	s.Call("session.close", nil)
	s.conn.Close()
}
