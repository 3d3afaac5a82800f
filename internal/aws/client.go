// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ec2v2 "github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/ec2tui/ec2tui/internal/log"
)

// Instance is the provider-neutral summary of one EC2 instance, as consumed
// by the registry. States are the provider's lifecycle names verbatim
// (pending, running, stopping, stopped, shutting-down, terminated); nothing
// here invents states.
type Instance struct {
	ID        string
	Name      string
	Type      string
	State     string
	PublicIP  string
	PrivateIP string
}

// Client is the cloud surface the rest of the application depends on. Only
// these three operations are used.
type Client interface {
	ListInstances(ctx context.Context) ([]Instance, error)
	StartInstance(ctx context.Context, id string) error
	StopInstance(ctx context.Context, id string) error
}

// ec2API is the slice of the SDK client used by EC2Client. Kept minimal so
// tests can fake it.
type ec2API interface {
	DescribeInstances(ctx context.Context, params *ec2v2.DescribeInstancesInput, optFns ...func(*ec2v2.Options)) (*ec2v2.DescribeInstancesOutput, error)
	StartInstances(ctx context.Context, params *ec2v2.StartInstancesInput, optFns ...func(*ec2v2.Options)) (*ec2v2.StartInstancesOutput, error)
	StopInstances(ctx context.Context, params *ec2v2.StopInstancesInput, optFns ...func(*ec2v2.Options)) (*ec2v2.StopInstancesOutput, error)
}

// EC2Client implements Client on top of the AWS SDK v2 EC2 client.
type EC2Client struct {
	api ec2API
}

// NewClient wraps an SDK EC2 client in the application-facing Client.
func NewClient(api *ec2v2.Client) *EC2Client {
	return &EC2Client{api: api}
}

// ListInstances fetches all instances in the configured region, following
// pagination. Failures are wrapped as *FetchError.
func (c *EC2Client) ListInstances(ctx context.Context) ([]Instance, error) {
	var out []Instance
	var token *string
	for {
		resp, err := c.api.DescribeInstances(ctx, &ec2v2.DescribeInstancesInput{NextToken: token})
		if err != nil {
			log.Debugf("describe err: err=%v", err)
			return nil, &FetchError{Err: err}
		}
		for _, reservation := range resp.Reservations {
			for _, inst := range reservation.Instances {
				rec := Instance{
					ID:        awsv2.ToString(inst.InstanceId),
					Type:      string(inst.InstanceType),
					PublicIP:  awsv2.ToString(inst.PublicIpAddress),
					PrivateIP: awsv2.ToString(inst.PrivateIpAddress),
				}
				if inst.State != nil {
					rec.State = string(inst.State.Name)
				}
				for _, tag := range inst.Tags {
					if awsv2.ToString(tag.Key) == "Name" {
						rec.Name = awsv2.ToString(tag.Value)
						break
					}
				}
				out = append(out, rec)
			}
		}
		if resp.NextToken == nil {
			break
		}
		token = resp.NextToken
	}
	log.Debugf("instances listed: count=%d", len(out))
	return out, nil
}

// StartInstance starts the instance by unmasked id. Failures are wrapped as
// *ActionError.
func (c *EC2Client) StartInstance(ctx context.Context, id string) error {
	_, err := c.api.StartInstances(ctx, &ec2v2.StartInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		log.Debugf("start err: id=%s err=%v", id, err)
		return &ActionError{Action: "start", InstanceID: id, Err: err}
	}
	log.Infof("start requested: id=%s", id)
	return nil
}

// StopInstance stops the instance by unmasked id. Failures are wrapped as
// *ActionError.
func (c *EC2Client) StopInstance(ctx context.Context, id string) error {
	_, err := c.api.StopInstances(ctx, &ec2v2.StopInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		log.Debugf("stop err: id=%s err=%v", id, err)
		return &ActionError{Action: "stop", InstanceID: id, Err: err}
	}
	log.Infof("stop requested: id=%s", id)
	return nil
}
