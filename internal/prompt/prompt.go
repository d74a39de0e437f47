// Package prompt builds the natural-language instructions sent to Gemini for
// each artifact family. Builders are pure functions of the configuration; they
// do no I/O and hold no state.
package prompt

import (
	"fmt"

	"eksgen/internal/config"
)

// TerraformStage1 asks for the base infrastructure: VPC, EKS cluster, node
// group, IAM, OIDC, ECR.
func TerraformStage1(cfg *config.Config) string {
	return fmt.Sprintf(`Generate a complete Terraform main.tf file for AWS EKS base infrastructure with the following specifications:

CONFIGURATION:
- Cluster name: %s
- Region: %s
- VPC CIDR: %s
- Node instance types: %s
- Desired capacity: %d
- Min capacity: %d
- Max capacity: %d

INCLUDE THE FOLLOWING COMPONENTS:
1. Terraform providers (aws, tls)
2. VPC with ONLY public subnets across 2 Availability Zones (no private subnets)
3. Internet Gateway for public internet access
4. Route table and associations for public subnets
5. EKS cluster and managed node group using public subnets
6. IAM roles for EKS cluster and node group
7. OIDC provider configuration for service accounts (IRSA)
8. Security groups for EKS control plane and worker nodes
9. ECR repository with lifecycle policy
10. Outputs for VPC ID, Public Subnet IDs, Cluster Name, Cluster Endpoint, EKS Role ARN, OIDC URL

IMPORTANT:
- Use correct resource dependencies
- Follow AWS EKS best practices
- Include proper tagging
- Ensure resource dependencies are handled correctly
- Do not include ALB Controller resources or Kubernetes provider config
- Use data sources for availability zones

Return ONLY the complete Terraform code, no explanations or comments outside the code.`,
		cfg.Cluster.Name,
		cfg.Cluster.Region,
		cfg.Cluster.VPCCIDR,
		cfg.InstanceTypes(),
		cfg.Cluster.DesiredCapacity,
		cfg.Cluster.MinCapacity,
		cfg.Cluster.MaxCapacity,
	)
}

// TerraformStage2 asks for the ALB controller layer on top of an existing
// cluster. It takes no configuration: every value is discovered by Terraform
// data sources at apply time.
func TerraformStage2() string {
	return `Generate a Terraform main.tf file to deploy the AWS ALB Controller on an existing EKS cluster with the following setup:

ASSUMPTIONS:
- The EKS cluster is already deployed using Terraform
- The OIDC provider is already created
- The IAM policy file for the ALB Controller (iam-policy.json) is manually downloaded and placed in the same folder
- Terraform has access to kubeconfig (either via AWS CLI or local file)

INCLUDE THE FOLLOWING COMPONENTS:
1. Terraform providers: aws, kubernetes, helm
2. Kubernetes provider configuration using data from the existing EKS cluster
3. IAM Role for the ALB Controller with:
   - IAM Policy loaded from a local file (iam-policy.json) using file("${path.module}/iam-policy.json")
   - Trust relationship with the EKS OIDC provider and namespace kube-system, service account aws-load-balancer-controller
4. Kubernetes service account for the ALB Controller in the kube-system namespace
5. Helm release to install the AWS Load Balancer Controller
6. Required labels and annotations to bind the IAM role to the service account (IRSA)
7. Outputs: IAM Role ARN, ALB Controller Helm release name, service account name

REQUIREMENTS:
- Use data blocks to fetch the existing EKS cluster name, OIDC provider URL, and region
- Ensure the IAM role uses a proper assume role policy for the service account via OIDC
- Set proper depends_on relationships where needed (e.g. the Helm release depends on the service account and IAM role)
- Do not include VPC, EKS, or OIDC creation in this file
- Follow AWS and Kubernetes best practices throughout

Return ONLY the complete Terraform code, no explanations or comments outside the code.`
}

// Variables asks for the variables.tf matching the stage-1 infrastructure.
func Variables(cfg *config.Config) string {
	return fmt.Sprintf(`Generate a Terraform variables.tf file for the EKS infrastructure with:
- cluster_name (default: %s)
- region (default: %s)
- vpc_cidr (default: %s)
- node_instance_types (default: [%s])
- desired_capacity (default: %d)
- min_capacity (default: %d)
- max_capacity (default: %d)
- environment (default: "dev")
- tags (map of strings)

Include proper descriptions and types for all variables.
Return ONLY the Terraform variables code.`,
		cfg.Cluster.Name,
		cfg.Cluster.Region,
		cfg.Cluster.VPCCIDR,
		cfg.InstanceTypes(),
		cfg.Cluster.DesiredCapacity,
		cfg.Cluster.MinCapacity,
		cfg.Cluster.MaxCapacity,
	)
}

// Manifests asks for the combined Deployment/Service/Ingress YAML, separated
// by the standard document marker so the extractor can split it per kind.
func Manifests(cfg *config.Config) string {
	return fmt.Sprintf(`Generate Kubernetes YAML manifests for deploying a Node.js application on AWS EKS using the ALB Ingress Controller.

Configuration:

1. Image:
   - Use the hardcoded image URL: %s

2. Deployment:
   - Name: node-app
   - Replicas: %d
   - Labels: app: node-app
   - Container:
     - Name: node-app
     - Image: the ECR URL above
     - Port: %d
     - readinessProbe: HTTP GET / on port %d
     - livenessProbe: HTTP GET / on port %d
     - initialDelaySeconds: 10
     - periodSeconds: 10
     - Resources:
       - Requests: cpu: 100m, memory: 128Mi
       - Limits: cpu: 500m, memory: 256Mi

3. Service:
   - Type: ClusterIP
   - Name: node-app-service
   - Selector: app: node-app
   - Port: %d (port and targetPort)

4. Ingress:
   - Name: node-app-ingress
   - Path: /
   - Backend: node-app-service:%d
   - Annotations (for the ALB Ingress Controller):
     - kubernetes.io/ingress.class: alb
     - alb.ingress.kubernetes.io/scheme: internet-facing
     - alb.ingress.kubernetes.io/target-type: ip
     - alb.ingress.kubernetes.io/backend-protocol: HTTP
     - alb.ingress.kubernetes.io/listen-ports: '[{"HTTP":80}]'

Output:
- Combine all three manifests (Deployment, Service, Ingress)
- Separate them using ---
- Output valid Kubernetes YAML`,
		cfg.ECRImage(),
		cfg.Cluster.DesiredCapacity,
		cfg.Cluster.AppPort,
		cfg.Cluster.AppPort,
		cfg.Cluster.AppPort,
		cfg.Cluster.AppPort,
		cfg.Cluster.AppPort,
	)
}

// Workflow asks for the GitHub Actions build-and-deploy workflow.
func Workflow(cfg *config.Config) string {
	return fmt.Sprintf(`Write a GitHub Actions workflow in YAML that:

1. Builds a Docker image from the project root
2. Tags and pushes it to AWS ECR
3. Sets up kubectl and configures it for the %s EKS cluster in %s
4. Applies deployment.yaml, service.yaml, and ingress.yaml using kubectl

Environment details:
- Use AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_ACCOUNT_ID from GitHub secrets
- ECR_REPOSITORY is the target ECR repo name (%s)

Respond with only the content of .github/workflows/deploy.yml. No markdown or explanation.`,
		cfg.Cluster.Name,
		cfg.Cluster.Region,
		cfg.Cluster.ECRRepository,
	)
}

// Dockerfile asks for the container build definition for the sample app.
func Dockerfile(cfg *config.Config) string {
	return fmt.Sprintf(`Generate a Dockerfile for a Node.js application that:

1. Uses node:18-slim as the base image
2. Sets the working directory to /app
3. Copies package*.json and installs production dependencies with npm install --omit=dev
4. Copies the rest of the app code
5. Exposes port %d
6. Uses node app.js as the default command

Do not wrap the output in code fences or any markdown.
Do not include any explanation.
Just return clean, ready-to-use Dockerfile content only.`,
		cfg.Cluster.AppPort,
	)
}

// Setup asks for the environment bootstrap script.
func Setup(cfg *config.Config) string {
	return fmt.Sprintf(`Generate a bash script for setting up the EKS environment for cluster %s in %s with:
- AWS CLI configuration check
- kubectl installation check
- Terraform initialization
- EKS cluster creation
- kubectl configuration
- ALB controller installation
- Cluster validation

The script should be production-ready with error handling.
Return ONLY the script body.`,
		cfg.Cluster.Name,
		cfg.Cluster.Region,
	)
}

// Deploy asks for the application deployment script.
func Deploy(cfg *config.Config) string {
	return fmt.Sprintf(`Generate a bash script for deploying the Node.js application with:
- Build Docker image
- Push to ECR (%s)
- Update Kubernetes manifests
- Deploy to EKS
- Health check validation
- Rollback capability

The script should include proper error handling and logging.
Return ONLY the script body.`,
		cfg.ECRRegistry(),
	)
}

// ConnectivityCheck is the cheap self-test prompt used to verify the API key
// and model before a full run.
func ConnectivityCheck() string {
	return "Say 'Hello, EKS automation pipeline!' and nothing else."
}
