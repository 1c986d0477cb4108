package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shimmeringbee/logwrap"
	"hue-mcp/internal/ports"
)

const (
	serverName        = "hue-mcp"
	defaultBrightness = 100
)

const instructions = "Controls Philips Hue lights on the local network. Light names match exactly, " +
	"room names ignore case. Use listAllLights or listAllRooms to discover names."

// Server exposes light control as MCP tools. Errors never escape as protocol faults;
// every failure becomes a text result.
type Server struct {
	control ports.LightControlPort
	info    ports.BridgeInfoPort
	logger  logwrap.Logger
	version string
}

func NewServer(control ports.LightControlPort, info ports.BridgeInfoPort, logger logwrap.Logger, version string) *Server {
	return &Server{control: control, info: info, logger: logger, version: version}
}

// MCPServer builds the protocol server with every tool registered.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer(
		serverName,
		s.version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	srv.AddTools(s.Tools()...)
	return srv
}

func (s *Server) Tools() []server.ServerTool {
	name := func(desc string) mcp.ToolOption {
		return mcp.WithString("name", mcp.Required(), mcp.Description(desc))
	}
	brightness := mcp.WithNumber("brightness",
		mcp.Description("Brightness in percent, 0-100. Defaults to 100."),
		mcp.Min(0),
		mcp.Max(100),
	)

	return []server.ServerTool{
		{
			Tool: mcp.NewTool("turnLightOn",
				mcp.WithDescription("Turn on a single light by its exact name."),
				name("Exact display name of the light"),
				brightness,
			),
			Handler: s.instrument("turnLightOn", s.handleTurnLightOn),
		},
		{
			Tool: mcp.NewTool("turnLightOff",
				mcp.WithDescription("Turn off a single light by its exact name."),
				name("Exact display name of the light"),
			),
			Handler: s.instrument("turnLightOff", s.handleTurnLightOff),
		},
		{
			Tool:    mcp.NewTool("listAllLights", mcp.WithDescription("List the names of all lights.")),
			Handler: s.instrument("listAllLights", s.handleListAllLights),
		},
		{
			Tool:    mcp.NewTool("listAllRooms", mcp.WithDescription("List the names of all rooms.")),
			Handler: s.instrument("listAllRooms", s.handleListAllRooms),
		},
		{
			Tool: mcp.NewTool("turnRoomLightsOn",
				mcp.WithDescription("Turn on every light in a room."),
				name("Name of the room, case-insensitive"),
				brightness,
			),
			Handler: s.instrument("turnRoomLightsOn", s.handleTurnRoomLightsOn),
		},
		{
			Tool: mcp.NewTool("turnRoomLightsOff",
				mcp.WithDescription("Turn off every light in a room."),
				name("Name of the room, case-insensitive"),
			),
			Handler: s.instrument("turnRoomLightsOff", s.handleTurnRoomLightsOff),
		},
		{
			Tool:    mcp.NewTool("getBridgeInfo", mcp.WithDescription("Describe the connected Hue bridge.")),
			Handler: s.instrument("getBridgeInfo", s.handleGetBridgeInfo),
		},
	}
}

// instrument tags each invocation with an id for the logs.
func (s *Server) instrument(tool string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = s.logger.AddOptionsToContext(ctx, logwrap.Datum("invocation", uuid.NewString()), logwrap.Datum("tool", tool))
		start := time.Now()

		s.logger.LogInfo(ctx, "Tool invoked.")
		res, err := handler(ctx, req)
		if res != nil && res.IsError {
			s.logger.LogWarn(ctx, "Tool failed.", logwrap.Datum("duration", time.Since(start).String()))
		} else {
			s.logger.LogInfo(ctx, "Tool completed.", logwrap.Datum("duration", time.Since(start).String()))
		}
		return res, err
	}
}

func failure(prefix string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", prefix, err))
}

func (s *Server) handleTurnLightOn(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return failure("Failed to turn on light", err), nil
	}
	if err := s.control.TurnLightOn(ctx, name, req.GetFloat("brightness", defaultBrightness)); err != nil {
		return failure("Failed to turn on light", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully turned on light: %s", name)), nil
}

func (s *Server) handleTurnLightOff(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return failure("Failed to turn off light", err), nil
	}
	if err := s.control.TurnLightOff(ctx, name); err != nil {
		return failure("Failed to turn off light", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully turned off light: %s", name)), nil
}

func (s *Server) handleListAllLights(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.control.ListAllLights(ctx)
	if err != nil {
		return failure("Failed to list lights", err), nil
	}
	return mcp.NewToolResultText("The available lights are: " + strings.Join(names, ", ")), nil
}

func (s *Server) handleListAllRooms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.control.ListAllRooms(ctx)
	if err != nil {
		return failure("Failed to list rooms", err), nil
	}
	return mcp.NewToolResultText("The available rooms are: " + strings.Join(names, ", ")), nil
}

func (s *Server) handleTurnRoomLightsOn(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return failure("Failed to turn on room lights", err), nil
	}
	if err := s.control.TurnOnRoomLights(ctx, name, req.GetFloat("brightness", defaultBrightness)); err != nil {
		return failure("Failed to turn on room lights", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully turned on all lights in room: %s", name)), nil
}

func (s *Server) handleTurnRoomLightsOff(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return failure("Failed to turn off room lights", err), nil
	}
	if err := s.control.TurnOffRoomLights(ctx, name); err != nil {
		return failure("Failed to turn off room lights", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully turned off all lights in room: %s", name)), nil
}

func (s *Server) handleGetBridgeInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.info.Describe(ctx)
	if err != nil {
		return failure("Failed to read bridge info", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Bridge %s (%s) at %s, software %s, API %s",
		info.Name, info.ModelID, info.Address, info.SoftwareVersion, info.APIVersion)), nil
}
