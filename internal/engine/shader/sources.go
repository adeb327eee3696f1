package shader

// DefaultVertexSource transforms each vertex by the model, view and
// projection matrices and forwards color and texel to the fragment stage.
const DefaultVertexSource = `#version 410 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec3 passed_color;
layout (location = 2) in vec2 passed_texel;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 color;
out vec2 texel;

void main() {
    gl_Position = projection * view * model * vec4(position, 1.0);
    color = passed_color;
    texel = passed_texel;
}
`

// DefaultFragmentSource modulates the sampled texture by the vertex color.
const DefaultFragmentSource = `#version 410 core

in vec3 color;
in vec2 texel;

uniform sampler2D texture_sampler;

out vec4 frag_color;

void main() {
    frag_color = texture(texture_sampler, texel) * vec4(color, 1.0);
}
`
