// Package shaders holds the GLSL programs the tower is drawn with.
package shaders

import "j4k.co/tower/gfx"

// BasicAttributes are the vertex inputs of the basic program.
var BasicAttributes = gfx.DefaultVertexAttributes.Subset(gfx.VertexPosition | gfx.VertexColor)

// PhongAttributes are the vertex inputs of the phong program.
var PhongAttributes = gfx.DefaultVertexAttributes.Subset(gfx.VertexPosition | gfx.VertexNormal)

const BasicVertex = `#version 410 core
uniform mat4 ModelViewProjectionM;

in vec3 Position;
in vec4 Color;

out vec4 color;

void main() {
	color = Color;
	gl_Position = ModelViewProjectionM * vec4(Position, 1.0);
}
`

const BasicFragment = `#version 410 core
in vec4 color;

out vec4 FragColor;

void main() {
	FragColor = color;
}
`

const PhongVertex = `#version 410 core
uniform mat4 ModelM;
uniform mat4 ViewM;
uniform mat4 ProjectionM;
uniform mat3 NormalM;

in vec3 Position;
in vec3 Normal;

out vec3 worldPos;
out vec3 worldNormal;

void main() {
	vec4 world = ModelM * vec4(Position, 1.0);
	worldPos = world.xyz;
	worldNormal = NormalM * Normal;
	gl_Position = ProjectionM * ViewM * world;
}
`

const PhongFragment = `#version 410 core
uniform vec4 Color;
uniform float Ambient;
uniform float Diffusivity;
uniform vec3 CameraPosition;
uniform vec4 LightPosition;
uniform vec4 LightColor;
uniform float LightAttenuation;

in vec3 worldPos;
in vec3 worldNormal;

out vec4 FragColor;

const float specularity = 1.0;
const float smoothness = 40.0;

void main() {
	vec3 N = normalize(worldNormal);
	vec3 L = LightPosition.xyz - LightPosition.w * worldPos;
	float dist = length(L);
	L = normalize(L);
	vec3 E = normalize(CameraPosition - worldPos);
	vec3 H = normalize(L + E);

	float diffuse = max(dot(N, L), 0.0);
	float specular = pow(max(dot(N, H), 0.0), smoothness);
	float attenuation = 1.0 / (1.0 + LightAttenuation * dist * dist);

	vec3 light = (Color.xyz * Diffusivity * diffuse + vec3(specularity * specular)) * LightColor.xyz;
	FragColor = vec4(Color.xyz * Ambient + light * attenuation, Color.w);
}
`
