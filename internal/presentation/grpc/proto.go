package grpc

// proto.go defines the gRPC server interface derived from
// casaflow/underwriting/v1/underwriting.proto. This file serves as a stand-in
// for buf-generated code. Once `buf generate` is run, replace this file with
// the import from github.com/casaflow/api/gen/go/casaflow/underwriting/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnderwritingServiceServer is the server API for UnderwritingService.
// It mirrors the proto-generated interface from
// casaflow.underwriting.v1.UnderwritingService.
type UnderwritingServiceServer interface {
	SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error)
	AnalyzeApplication(context.Context, *AnalyzeApplicationRequest) (*AnalyzeApplicationResponse, error)
	GenerateAssessmentReport(context.Context, *GenerateAssessmentReportRequest) (*GenerateAssessmentReportResponse, error)
	ProcessApplication(context.Context, *ProcessApplicationRequest) (*ProcessApplicationResponse, error)
	GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error)
	GetAnalysisReport(context.Context, *GetAnalysisReportRequest) (*GetAnalysisReportResponse, error)
	mustEmbedUnimplementedUnderwritingServiceServer()
}

// UnimplementedUnderwritingServiceServer provides forward-compatible default
// implementations.
type UnimplementedUnderwritingServiceServer struct{}

func (UnimplementedUnderwritingServiceServer) SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitApplication not implemented")
}
func (UnimplementedUnderwritingServiceServer) AnalyzeApplication(context.Context, *AnalyzeApplicationRequest) (*AnalyzeApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeApplication not implemented")
}
func (UnimplementedUnderwritingServiceServer) GenerateAssessmentReport(context.Context, *GenerateAssessmentReportRequest) (*GenerateAssessmentReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateAssessmentReport not implemented")
}
func (UnimplementedUnderwritingServiceServer) ProcessApplication(context.Context, *ProcessApplicationRequest) (*ProcessApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessApplication not implemented")
}
func (UnimplementedUnderwritingServiceServer) GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetApplication not implemented")
}
func (UnimplementedUnderwritingServiceServer) GetAnalysisReport(context.Context, *GetAnalysisReportRequest) (*GetAnalysisReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAnalysisReport not implemented")
}
func (UnimplementedUnderwritingServiceServer) mustEmbedUnimplementedUnderwritingServiceServer() {}

// RegisterUnderwritingServiceServer registers the UnderwritingServiceServer
// with the gRPC server.
func RegisterUnderwritingServiceServer(s *grpclib.Server, srv UnderwritingServiceServer) {
	s.RegisterService(&_UnderwritingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _UnderwritingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "casaflow.underwriting.v1.UnderwritingService",
	HandlerType: (*UnderwritingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SubmitApplication", Handler: _UnderwritingService_SubmitApplication_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "AnalyzeApplication", Handler: _UnderwritingService_AnalyzeApplication_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "GenerateAssessmentReport", Handler: _UnderwritingService_GenerateAssessmentReport_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "ProcessApplication", Handler: _UnderwritingService_ProcessApplication_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "GetApplication", Handler: _UnderwritingService_GetApplication_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "GetAnalysisReport", Handler: _UnderwritingService_GetAnalysisReport_Handler},               //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _UnderwritingService_SubmitApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).SubmitApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/casaflow.underwriting.v1.UnderwritingService/SubmitApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).SubmitApplication(ctx, req.(*SubmitApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _UnderwritingService_AnalyzeApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).AnalyzeApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/casaflow.underwriting.v1.UnderwritingService/AnalyzeApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).AnalyzeApplication(ctx, req.(*AnalyzeApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _UnderwritingService_GenerateAssessmentReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateAssessmentReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).GenerateAssessmentReport(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/casaflow.underwriting.v1.UnderwritingService/GenerateAssessmentReport",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).GenerateAssessmentReport(ctx, req.(*GenerateAssessmentReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _UnderwritingService_ProcessApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).ProcessApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/casaflow.underwriting.v1.UnderwritingService/ProcessApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).ProcessApplication(ctx, req.(*ProcessApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _UnderwritingService_GetApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).GetApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/casaflow.underwriting.v1.UnderwritingService/GetApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).GetApplication(ctx, req.(*GetApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _UnderwritingService_GetAnalysisReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAnalysisReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).GetAnalysisReport(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/casaflow.underwriting.v1.UnderwritingService/GetAnalysisReport",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).GetAnalysisReport(ctx, req.(*GetAnalysisReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}
